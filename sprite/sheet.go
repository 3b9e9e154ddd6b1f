package sprite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/iancoleman/orderedmap"
)

// Frame is one cell of a sheet: where to sample it from the atlas and how long
// it stays on screen, in milliseconds.
type Frame struct {
	Sample   image.Point
	Duration float64
}

// Sheet is the metadata for one sprite kind. Every frame shares Size.
type Sheet struct {
	Frames []Frame
	Size   image.Point
}

// Rect returns the atlas rectangle of frame i.
func (s *Sheet) Rect(i int) image.Rectangle {
	f := s.Frames[i]
	return image.Rectangle{Min: f.Sample, Max: f.Sample.Add(s.Size)}
}

// SheetDocument is the JSON layout Aseprite writes with "Array" frame export.
// The "Hash" export, where frames is an object keyed by frame name, is also
// accepted by ParseSheet; its key order is kept.
type SheetDocument struct {
	Frames []FrameDocument `json:"frames" jsonschema:"required,minItems=1"`
	Meta   *MetaDocument   `json:"meta,omitempty"`
}

// FrameDocument is one entry of the frames list.
type FrameDocument struct {
	Filename string       `json:"filename,omitempty"`
	Frame    RectDocument `json:"frame" jsonschema:"required"`
	Duration *float64     `json:"duration" jsonschema:"required,minimum=0,description=Frame duration in milliseconds"`
}

// RectDocument is an atlas rectangle in pixels.
type RectDocument struct {
	X *int `json:"x" jsonschema:"required,minimum=0"`
	Y *int `json:"y" jsonschema:"required,minimum=0"`
	W int  `json:"w" jsonschema:"required,minimum=1"`
	H int  `json:"h" jsonschema:"required,minimum=1"`
}

// MetaDocument carries the exporter's bookkeeping. Only Image is read.
type MetaDocument struct {
	App   string `json:"app,omitempty"`
	Image string `json:"image,omitempty"`
	Size  struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"size"`
}

type sheetEnvelope struct {
	Frames json.RawMessage `json:"frames"`
}

// ParseSheet decodes Aseprite sheet metadata.
// The sheet size is taken from the first frame.
func ParseSheet(data []byte) (Sheet, error) {
	var env sheetEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Sheet{}, fmt.Errorf("parse sheet: %w", err)
	}

	raw := bytes.TrimSpace(env.Frames)
	if len(raw) == 0 {
		return Sheet{}, errors.New("parse sheet: missing frames")
	}

	var docs []FrameDocument
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &docs); err != nil {
			return Sheet{}, fmt.Errorf("parse sheet frames: %w", err)
		}
	case '{':
		ordered, err := orderedFrames(raw)
		if err != nil {
			return Sheet{}, err
		}
		docs = ordered
	default:
		return Sheet{}, errors.New("parse sheet: frames must be an array or an object")
	}

	return sheetFromDocuments(docs)
}

// orderedFrames decodes the hash layout, keeping the key order of the file.
func orderedFrames(raw []byte) ([]FrameDocument, error) {
	byName := make(map[string]FrameDocument)
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, fmt.Errorf("parse sheet frames: %w", err)
	}

	keys := orderedmap.New()
	if err := json.Unmarshal(raw, keys); err != nil {
		return nil, fmt.Errorf("parse sheet frame order: %w", err)
	}

	docs := make([]FrameDocument, 0, len(byName))
	for _, name := range keys.Keys() {
		doc := byName[name]
		if doc.Filename == "" {
			doc.Filename = name
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func sheetFromDocuments(docs []FrameDocument) (Sheet, error) {
	if len(docs) == 0 {
		return Sheet{}, errors.New("parse sheet: no frames")
	}

	sheet := Sheet{Frames: make([]Frame, 0, len(docs))}
	for i, doc := range docs {
		if doc.Frame.X == nil || doc.Frame.Y == nil || *doc.Frame.X < 0 || *doc.Frame.Y < 0 {
			return Sheet{}, fmt.Errorf("parse sheet: frame %d (%q): invalid position", i, doc.Filename)
		}
		if doc.Frame.W <= 0 || doc.Frame.H <= 0 {
			return Sheet{}, fmt.Errorf("parse sheet: frame %d (%q): invalid size %dx%d", i, doc.Filename, doc.Frame.W, doc.Frame.H)
		}
		if doc.Duration == nil || *doc.Duration < 0 {
			return Sheet{}, fmt.Errorf("parse sheet: frame %d (%q): invalid duration", i, doc.Filename)
		}

		sheet.Frames = append(sheet.Frames, Frame{
			Sample:   image.Pt(*doc.Frame.X, *doc.Frame.Y),
			Duration: *doc.Duration,
		})

		if i == 0 {
			sheet.Size = image.Pt(doc.Frame.W, doc.Frame.H)
		}
	}
	return sheet, nil
}
