package ui_test

import (
	"fmt"

	"github.com/go-spatialui/spatialui/pkg/layout"
	"github.com/go-spatialui/spatialui/pkg/scene"
	"github.com/go-spatialui/spatialui/pkg/ui"
	"github.com/go-spatialui/spatialui/pkg/widget"
)

// This example builds a paginated panel: a template with capacity for four
// rows, filled with five elements so the fifth spills into an automatically
// created second page.
func ExampleController() {
	controller, err := ui.NewController(ui.Config{
		Width:  0.5,
		Height: 0.2,
		Mode:   ui.Mode{Template: layout.NewContainer(nil)},
	}, nil)
	if err != nil {
		panic(err)
	}

	world := scene.NewScene()
	if err := controller.AddToScene(world); err != nil {
		panic(err)
	}

	// Each row declares a quarter of the page height, so four rows fill a page.
	for i := 0; i < 5; i++ {
		row := widget.NewBlock(layout.Style{Height: 0.25})
		if err := controller.Add(row); err != nil {
			panic(err)
		}
	}
	controller.Refresh()

	for i, page := range controller.Pages() {
		fmt.Printf("page %d: %d rows, visible=%v\n",
			i, len(page.Root().Children()), page.Visible())
	}

	controller.NextPage()
	fmt.Printf("after NextPage: page 1 visible=%v\n", controller.Pages()[1].Visible())

	// Output:
	// page 0: 4 rows, visible=true
	// page 1: 1 rows, visible=false
	// after NextPage: page 1 visible=true
}
