package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/woodland/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Kind int

func (k Kind) String() string {
	if k == 1 {
		return "tree"
	}
	return "other"
}

type Inner struct {
	A int
}

type Sample struct {
	Kind     Kind
	Position [2]float32
	HP       float32
	Timer    *float32
	Active   bool
	Inner    Inner
	Tags     []string
	hidden   int
}

func TestReflectionCacheFields(t *testing.T) {
	cache := NewReflectionCache()
	fields := cache.GetFields(reflect.TypeOf(Sample{}))

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Kind", "Position", "HP", "Timer", "Active", "Inner", "Tags"}, names)

	timer := fields[3]
	assert.True(t, timer.IsPointer)
	assert.Equal(t, reflect.TypeOf(float32(0)), timer.Type)
	assert.True(t, fields[1].IsArray)
	assert.True(t, fields[5].IsStruct)
	assert.True(t, fields[6].IsSlice)

	again := cache.GetFields(reflect.TypeOf(Sample{}))
	assert.Same(t, &fields[0], &again[0], "fields are cached")

	assert.Empty(t, cache.GetFields(reflect.TypeOf(0)))
}

func TestSummary(t *testing.T) {
	timer := float32(2.5)
	s := &Sample{Kind: 1, Position: [2]float32{3, 4}, HP: 10, Timer: &timer, Active: true, hidden: 7}

	assert.Equal(t, "Kind=tree Position=[3 4] HP=10 Timer=2.5 Active=true", Summary(s))

	s.Timer = nil
	assert.Contains(t, Summary(*s), "Timer=nil")

	var missing *Sample
	assert.Equal(t, "<nil>", Summary(missing))
	assert.Equal(t, "42", Summary(42))
}

func TestSetters(t *testing.T) {
	var s struct {
		Small int8
		F     float32
		B     bool
		S     string
	}
	val := reflect.ValueOf(&s).Elem()

	assert.True(t, setInt(val.Field(0), 12))
	assert.False(t, setInt(val.Field(0), 1000), "overflow is refused")
	assert.Equal(t, int8(12), s.Small)

	assert.True(t, setFloat(val.Field(1), 1.5))
	assert.True(t, setBool(val.Field(2), true))
	assert.True(t, setString(val.Field(3), "x"))
	assert.Equal(t, float32(1.5), s.F)
	assert.True(t, s.B)
	assert.Equal(t, "x", s.S)

	assert.False(t, setInt(reflect.ValueOf(3), 4), "unaddressable values are refused")
}

func newBrowserStore() (*ecs.Storage[Sample], []ecs.EntityId) {
	storage := ecs.NewStorage[Sample]()
	ids := []ecs.EntityId{
		storage.Spawn(Sample{Kind: 1, HP: 3}),
		storage.Spawn(Sample{Kind: 2, HP: 1}),
		storage.Spawn(Sample{Kind: 1, HP: 2}),
	}
	return storage, ids
}

func TestEntityBrowserRebuild(t *testing.T) {
	storage, ids := newBrowserStore()
	eb := NewEntityBrowser[Sample](2)

	eb.rebuild(storage)
	require.Len(t, eb.entities, 3)
	for i, e := range eb.entities {
		assert.Equal(t, ids[i], e.ID)
		assert.Equal(t, i, e.Slot)
	}

	eb.filterText = "TREE"
	filtered := eb.filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, ids[0], filtered[0].ID)
	assert.Equal(t, ids[2], filtered[1].ID)

	eb.filterText = ""
	eb.sortColumn, eb.sortAscending = 0, false
	eb.sortEntities()
	assert.Equal(t, ids[2], eb.entities[0].ID)
}

func TestEntityBrowserDescribe(t *testing.T) {
	storage, _ := newBrowserStore()
	eb := NewEntityBrowser[Sample](10)
	eb.Describe = func(s *Sample) string { return s.Kind.String() }

	eb.rebuild(storage)
	assert.Equal(t, "tree", eb.entities[0].Summary)
	assert.Equal(t, "other", eb.entities[1].Summary)
}

func TestEntityBrowserPaging(t *testing.T) {
	eb := NewEntityBrowser[Sample](2)

	start, end := eb.page(5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
	assert.Equal(t, 3, eb.totalPages(5))

	eb.currentPage = 2
	start, end = eb.page(5)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)

	start, end = eb.page(1)
	assert.Equal(t, 0, eb.currentPage, "page is pulled back when the list shrinks")
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)

	start, end = eb.page(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestEntityBrowserSelection(t *testing.T) {
	eb := NewEntityBrowser[Sample](10)
	assert.False(t, eb.GetSelectedEntity().Valid())

	eb.Select(7)
	assert.Equal(t, ecs.EntityId(7), eb.GetSelectedEntity())
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4)
	for _, dt := range []float32{0.010, 0.020, 0.010, 0.020} {
		ps.Record(dt)
	}
	assert.InDelta(t, 15.0, ps.AverageFrameTime(), 1e-4)

	ps.Record(0.030)
	assert.InDelta(t, 20.0, ps.AverageFrameTime(), 1e-4, "oldest sample is overwritten")
}

func TestHiddenImguiSystemDefersNothing(t *testing.T) {
	system := &ImguiSystem[int]{
		Items:  []ImguiItem{{Render: func() { t.Fatal("rendered while hidden") }}},
		Hidden: true,
	}

	scheduler := ecs.NewScheduler[int]()
	scheduler.Register(system)
	scheduler.Once(0, 0)

	assert.Equal(t, ImguiInputState{}, system.InputState)

	system.Toggle()
	assert.False(t, system.Hidden)
}
