package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starward/engine"
)

type objectInfo struct {
	Handle        engine.Handle
	Name          string
	PropertyTypes []string
	PropertyCount int
}

type objectBrowserCache struct {
	objects       []objectInfo
	lastSceneLen  int
	sortColumn    int
	sortAscending bool
}

func NewObjectBrowser(maxRowsPerPage int) ObjectBrowser {
	return ObjectBrowser{
		cache: &objectBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxRowsPerPage: maxRowsPerPage,
	}
}

func (ob *ObjectBrowser) Render(scene *engine.Scene) {
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ob.rebuildCacheIfNeeded(scene)

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Properties")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ob.cache.sortColumn = int(spec.ColumnIndex())
			ob.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ob.sortObjects()
			sortSpecs.SetSpecsDirty(false)
		}

		filtered := ob.getFilteredObjects()

		startIdx := ob.currentPage * ob.maxRowsPerPage
		endIdx := startIdx + ob.maxRowsPerPage
		if endIdx > len(filtered) {
			endIdx = len(filtered)
		}

		for i := startIdx; i < endIdx; i++ {
			info := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ob.selectedHandle == info.Handle
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d", info.Name, info.Handle), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ob.selectedHandle = info.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d:%d", info.Handle.Generation(), info.Handle.Index()))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.PropertyTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.PropertyCount))
		}

		imgui.EndTable()
	}

	filtered := ob.getFilteredObjects()

	if len(filtered) > ob.maxRowsPerPage {
		totalPages := (len(filtered) + ob.maxRowsPerPage - 1) / ob.maxRowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", ob.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && ob.currentPage > 0 {
			ob.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && ob.currentPage < totalPages-1 {
			ob.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d objects", len(filtered)))
	}

	imgui.End()
}

func (ob *ObjectBrowser) rebuildCacheIfNeeded(scene *engine.Scene) {
	if ob.cache.lastSceneLen != scene.Len() {
		ob.cache.objects = nil
		ob.cache.lastSceneLen = scene.Len()
	}

	if ob.cache.objects == nil {
		ob.rebuildCache(scene)
	}
}

func (ob *ObjectBrowser) rebuildCache(scene *engine.Scene) {
	ob.cache.objects = make([]objectInfo, 0, scene.Len())

	for obj := range scene.Objects() {
		propertyTypes := make([]string, 0, obj.PropertyCount())
		for p := range obj.Properties() {
			propertyTypes = append(propertyTypes, fmt.Sprintf("%T", p))
		}

		ob.cache.objects = append(ob.cache.objects, objectInfo{
			Handle:        obj.Handle(),
			Name:          obj.Name(),
			PropertyTypes: propertyTypes,
			PropertyCount: len(propertyTypes),
		})
	}

	ob.sortObjects()
}

func (ob *ObjectBrowser) sortObjects() {
	sort.Slice(ob.cache.objects, func(i, j int) bool {
		a, b := ob.cache.objects[i], ob.cache.objects[j]
		var less bool

		switch ob.cache.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Handle < b.Handle
		case 2:
			less = strings.Join(a.PropertyTypes, ",") < strings.Join(b.PropertyTypes, ",")
		case 3:
			less = a.PropertyCount < b.PropertyCount
		default:
			less = a.Handle < b.Handle
		}

		if !ob.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (ob *ObjectBrowser) getFilteredObjects() []objectInfo {
	if ob.filterText == "" {
		return ob.cache.objects
	}

	filtered := make([]objectInfo, 0, len(ob.cache.objects))
	filterLower := strings.ToLower(ob.filterText)

	for _, info := range ob.cache.objects {
		nameStr := strings.ToLower(info.Name)
		propsStr := strings.ToLower(strings.Join(info.PropertyTypes, " "))

		if !strings.Contains(nameStr, filterLower) &&
			!strings.Contains(propsStr, filterLower) {
			continue
		}

		filtered = append(filtered, info)
	}

	return filtered
}

// SelectedHandle returns the handle of the row picked in the browser, zero
// when nothing is selected.
func (ob *ObjectBrowser) SelectedHandle() engine.Handle {
	return ob.selectedHandle
}
