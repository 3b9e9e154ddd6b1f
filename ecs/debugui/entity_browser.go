package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/woodland/ecs"
)

type EntityInfo struct {
	ID      ecs.EntityId
	Slot    int
	Summary string
}

// EntityBrowser lists the entities of one store, filterable and sortable,
// and remembers the selected entity.
type EntityBrowser[T any] struct {
	// Describe produces the summary column. Nil uses Summary.
	Describe func(*T) string

	entities           []EntityInfo
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
	sortColumn         int
	sortAscending      bool
}

func NewEntityBrowser[T any](maxEntitiesPerPage int) *EntityBrowser[T] {
	return &EntityBrowser[T]{
		maxEntitiesPerPage: maxEntitiesPerPage,
		sortColumn:         1,
		sortAscending:      true,
	}
}

func (eb *EntityBrowser[T]) Render(storage *ecs.Storage[T]) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuild(storage)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.currentPage = 0
	}

	filteredEntities := eb.filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Summary")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.sortColumn = int(spec.ColumnIndex())
			eb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx, endIdx := eb.page(len(filteredEntities))
		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityId == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityId = entity.ID
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.Slot))

			imgui.TableNextColumn()
			imgui.Text(entity.Summary)
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := eb.totalPages(len(filteredEntities))
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// rebuild snapshots the store. Entities churn every frame, so there is no
// point caching across frames.
func (eb *EntityBrowser[T]) rebuild(storage *ecs.Storage[T]) {
	describe := eb.Describe
	if describe == nil {
		describe = func(item *T) string { return Summary(item) }
	}

	eb.entities = eb.entities[:0]
	slot := 0
	for id, item := range storage.Iter() {
		eb.entities = append(eb.entities, EntityInfo{
			ID:      id,
			Slot:    slot,
			Summary: describe(item),
		})
		slot++
	}

	eb.sortEntities()
}

func (eb *EntityBrowser[T]) sortEntities() {
	sort.SliceStable(eb.entities, func(i, j int) bool {
		a, b := eb.entities[i], eb.entities[j]
		var less bool

		switch eb.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 2:
			less = a.Summary < b.Summary
		default:
			less = a.Slot < b.Slot
		}

		if !eb.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser[T]) filtered() []EntityInfo {
	if eb.filterText == "" {
		return eb.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(strings.ToLower(entity.Summary), filterLower) {
			continue
		}
		filtered = append(filtered, entity)
	}

	return filtered
}

func (eb *EntityBrowser[T]) totalPages(n int) int {
	if eb.maxEntitiesPerPage <= 0 {
		return 1
	}
	return max(1, (n+eb.maxEntitiesPerPage-1)/eb.maxEntitiesPerPage)
}

// page returns the visible range, pulling the current page back if the list
// shrank under it.
func (eb *EntityBrowser[T]) page(n int) (int, int) {
	if eb.maxEntitiesPerPage <= 0 {
		return 0, n
	}
	eb.currentPage = min(eb.currentPage, eb.totalPages(n)-1)
	start := eb.currentPage * eb.maxEntitiesPerPage
	return start, min(start+eb.maxEntitiesPerPage, n)
}

func (eb *EntityBrowser[T]) GetSelectedEntity() ecs.EntityId {
	return eb.selectedEntityId
}

// Select makes id the selected entity.
func (eb *EntityBrowser[T]) Select(id ecs.EntityId) {
	eb.selectedEntityId = id
}
