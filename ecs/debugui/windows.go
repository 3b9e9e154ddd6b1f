package debugui

import "github.com/plus3/woodland/ecs"

// StandardWindows builds the entity browser, the inspector for the browser's
// selection and the performance window over one store and its scheduler.
func StandardWindows[T any](storage *ecs.Storage[T], stats func() *ecs.SchedulerStats) []ImguiItem {
	browser := NewEntityBrowser[T](100)
	inspector := NewInspector[T]()
	perf := NewPerformanceStats(120)
	timer := NewFrameTimer()

	return []ImguiItem{
		{Render: func() { browser.Render(storage) }},
		{Render: func() { inspector.Render(storage, browser.GetSelectedEntity()) }},
		{Render: func() { perf.Render(storage.CollectStats(), stats(), timer.GetDeltaTime()) }},
	}
}
