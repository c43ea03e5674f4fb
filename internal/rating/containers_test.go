package rating

import (
	"testing"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

var testCatalog = []Container{
	{ID: "box_small", Name: "Small Box", VolumeM3: 0.03, WeightKg: 0.5, CostInclVat: 4.3},
	{ID: "box_medium", Name: "Medium Box", VolumeM3: 0.06, WeightKg: 0.8, CostInclVat: 6.7},
	{ID: "box_large", Name: "Large Box", VolumeM3: 0.09, WeightKg: 1.2, CostInclVat: 8.5},
}

func TestPackContainersPicksSmallestSufficientBox(t *testing.T) {
	t.Parallel()

	plan := PackContainers(map[enums.Category]float64{enums.CategoryFresh: 0.05}, testCatalog)

	boxes := plan[enums.CategoryFresh]
	if len(boxes) != 1 || boxes[0].ID != "box_medium" {
		t.Fatalf("expected one medium box, got %+v", boxes)
	}
}

func TestPackContainersOverflowsIntoLargest(t *testing.T) {
	t.Parallel()

	// 0.2 m³ needs more than any single box: largest (0.09) twice leaves
	// 0.02, which a small box covers.
	plan := PackContainers(map[enums.Category]float64{enums.CategoryFrozen: 0.2}, testCatalog)

	boxes := plan[enums.CategoryFrozen]
	if len(boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %+v", boxes)
	}
	if boxes[0].ID != "box_large" || boxes[1].ID != "box_large" || boxes[2].ID != "box_small" {
		t.Fatalf("unexpected packing order: %+v", boxes)
	}

	var assigned float64
	for _, box := range boxes {
		assigned += box.VolumeM3
	}
	if assigned < 0.2 {
		t.Fatalf("plan must cover the needed volume, assigned %v", assigned)
	}
}

func TestPackContainersIgnoresZeroVolumeEntries(t *testing.T) {
	t.Parallel()

	catalog := append([]Container{{ID: "broken", VolumeM3: 0}}, testCatalog...)
	plan := PackContainers(map[enums.Category]float64{enums.CategoryAmbient: 0.01}, catalog)

	if plan[enums.CategoryAmbient][0].ID == "broken" {
		t.Fatal("zero-volume container must never be assigned")
	}
}

func TestPackContainersEmptyCatalog(t *testing.T) {
	t.Parallel()

	plan := PackContainers(map[enums.Category]float64{enums.CategoryAmbient: 0.01}, nil)
	if plan.Count() != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
	if !plan.CostInclVat().IsZero() {
		t.Fatal("empty plan costs nothing")
	}
}

func TestContainerPlanTotals(t *testing.T) {
	t.Parallel()

	plan := ContainerPlan{
		enums.CategoryFresh:  {testCatalog[0], testCatalog[1]},
		enums.CategoryFrozen: {testCatalog[2]},
	}
	if got := plan.CostInclVat().StringFixed(2); got != "19.50" {
		t.Fatalf("unexpected plan cost %s", got)
	}
	if got := plan.WeightKg(); got != 2.5 {
		t.Fatalf("unexpected plan weight %v", got)
	}
	if plan.Count() != 3 {
		t.Fatalf("unexpected box count %d", plan.Count())
	}
}
