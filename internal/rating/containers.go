package rating

import (
	"sort"

	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Container is one packaging catalog entry.
type Container struct {
	ID          string
	Name        string
	VolumeM3    float64
	WeightKg    float64
	CostExclVat float64
	CostInclVat float64
}

// ContainerPlan assigns boxes per category. Total assigned volume may exceed
// the needed volume: physical boxes cannot be fractional.
type ContainerPlan map[enums.Category][]Container

// PackContainers covers each category's volume with boxes from the catalog.
// For the remaining volume it picks the smallest container that fits it in
// one box; when even the largest is too small, it adds the largest and
// keeps going. Containers with non-positive volume are ignored so the loop
// always terminates.
func PackContainers(volumeByCategory map[enums.Category]float64, catalog []Container) ContainerPlan {
	usable := make([]Container, 0, len(catalog))
	for _, c := range catalog {
		if c.VolumeM3 > 0 {
			usable = append(usable, c)
		}
	}
	sort.Slice(usable, func(i, j int) bool {
		return usable[i].VolumeM3 < usable[j].VolumeM3
	})

	plan := make(ContainerPlan, len(volumeByCategory))
	if len(usable) == 0 {
		return plan
	}
	largest := usable[len(usable)-1]

	for category, needed := range volumeByCategory {
		remaining := needed
		for remaining > 0 {
			box := largest
			for _, candidate := range usable {
				if candidate.VolumeM3 >= remaining {
					box = candidate
					break
				}
			}
			plan[category] = append(plan[category], box)
			remaining -= box.VolumeM3
		}
	}

	return plan
}

// CostInclVat sums the VAT-inclusive cost of every assigned box.
func (p ContainerPlan) CostInclVat() decimal.Decimal {
	total := decimal.Zero
	for _, boxes := range p {
		for _, box := range boxes {
			total = total.Add(decimal.NewFromFloat(box.CostInclVat))
		}
	}
	return total
}

// WeightKg sums the tare weight of every assigned box.
func (p ContainerPlan) WeightKg() float64 {
	var total float64
	for _, boxes := range p {
		for _, box := range boxes {
			total += box.WeightKg
		}
	}
	return total
}

// Count returns the number of assigned boxes.
func (p ContainerPlan) Count() int {
	var n int
	for _, boxes := range p {
		n += len(boxes)
	}
	return n
}
