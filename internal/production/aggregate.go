package production

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minjipark/tteokbang-backend/pkg/enums"
)

// UnknownProduct is the grouping key used when a line carries no product name.
// Unresolvable lines are folded here rather than dropped so no order silently
// disappears from the day's worklist.
const UnknownProduct = "unknown"

// Task is one entry of the day's production worklist. Either TotalQuantity and
// Unit are set (all contributing lines share one unit) or UnitBreakdown is set
// (lines used several units). CustomerName is present only for rice-supplied
// tasks, which are tracked per customer.
type Task struct {
	ProductName   string           `json:"productName"`
	HasRice       bool             `json:"hasRice"`
	CustomerName  string           `json:"customerName,omitempty"`
	TotalQuantity *decimal.Decimal `json:"totalQuantity,omitempty"`
	Unit          enums.Unit       `json:"unit,omitempty"`
	UnitBreakdown string           `json:"unitBreakdown,omitempty"`
	OrderIDs      []int64          `json:"orderIds"`
}

// taskKey is the composite grouping key. Using a struct instead of a joined
// string means a product literally named "X_rice_Y" can never collide with the
// key for product "X" and customer "Y". Equality is exact and case-sensitive.
type taskKey struct {
	product  string
	hasRice  bool
	customer string // empty unless hasRice
}

// accumulator is a tagged quantity variant: it tracks a single-unit scalar
// until a second unit appears for the key, then switches to per-unit
// subtotals. The transition is one-way.
type accumulator struct {
	key       taskKey
	breakdown bool
	unit      enums.Unit
	total     decimal.Decimal
	subtotals map[enums.Unit]decimal.Decimal
	unitOrder []enums.Unit
	orderIDs  []int64
	orderSeen map[int64]struct{}
}

// Aggregate groups the lines of every order picked up on day into production
// tasks. Lines with HasRice merge per (product, customer); lines without merge
// per product across all customers. It never fails: malformed input degrades
// into the UnknownProduct key. Emission order is first-seen key order and is
// not a contract; callers apply SortTasks for display.
func Aggregate(orders []Order, day Day) []Task {
	index := make(map[taskKey]*accumulator)
	var order []*accumulator

	for _, o := range orders {
		if o.PickupDay() != day {
			continue
		}
		for _, line := range o.Lines {
			key := keyFor(line, o.CustomerName)
			acc := index[key]
			if acc == nil {
				acc = &accumulator{
					key:       key,
					unit:      line.Unit,
					total:     line.Quantity,
					orderSeen: make(map[int64]struct{}),
				}
				index[key] = acc
				order = append(order, acc)
			} else {
				acc.add(line.Unit, line.Quantity)
			}
			acc.noteOrder(o.ID)
		}
	}

	tasks := make([]Task, 0, len(order))
	for _, acc := range order {
		tasks = append(tasks, acc.task())
	}
	return tasks
}

func keyFor(line Line, customerName string) taskKey {
	name := line.ProductName
	if name == "" {
		name = UnknownProduct
	}
	key := taskKey{product: name, hasRice: line.HasRice}
	if line.HasRice {
		// Self-supplied rice stays attributable to the customer who brought it.
		key.customer = customerName
	}
	return key
}

// noteOrder records a contributing order at most once, preserving first-seen
// order so the "N orders" count is not inflated by multi-line orders.
func (a *accumulator) noteOrder(id int64) {
	if _, ok := a.orderSeen[id]; ok {
		return
	}
	a.orderSeen[id] = struct{}{}
	a.orderIDs = append(a.orderIDs, id)
}

func (a *accumulator) add(unit enums.Unit, qty decimal.Decimal) {
	if !a.breakdown {
		if unit == a.unit {
			a.total = a.total.Add(qty)
			return
		}
		// Second unit for this key: seed the subtotal map with what the
		// scalar accumulated so far.
		a.breakdown = true
		a.subtotals = map[enums.Unit]decimal.Decimal{a.unit: a.total}
		a.unitOrder = []enums.Unit{a.unit}
	}
	if _, ok := a.subtotals[unit]; !ok {
		a.unitOrder = append(a.unitOrder, unit)
	}
	a.subtotals[unit] = a.subtotals[unit].Add(qty)
}

func (a *accumulator) task() Task {
	task := Task{
		ProductName:  a.key.product,
		HasRice:      a.key.hasRice,
		CustomerName: a.key.customer,
		OrderIDs:     append([]int64(nil), a.orderIDs...),
	}
	if a.breakdown {
		task.UnitBreakdown = a.breakdownString()
		return task
	}
	total := a.total
	task.TotalQuantity = &total
	task.Unit = a.unit
	return task
}

// breakdownString renders "5kg + 3개" style subtotals in the order the units
// were first encountered, omitting zero subtotals.
func (a *accumulator) breakdownString() string {
	parts := make([]string, 0, len(a.unitOrder))
	for _, unit := range a.unitOrder {
		sub := a.subtotals[unit]
		if sub.IsZero() {
			continue
		}
		parts = append(parts, sub.String()+unit.String())
	}
	return strings.Join(parts, " + ")
}

// TaskSort selects the display ordering applied on top of aggregator output.
type TaskSort string

const (
	// TaskSortName orders tasks by product name.
	TaskSortName TaskSort = "name"
	// TaskSortRice puts rice-supplied tasks first, then orders by name.
	TaskSortRice TaskSort = "rice"
)

// SortTasks applies the requested display ordering in place.
func SortTasks(tasks []Task, by TaskSort) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if by == TaskSortRice && a.HasRice != b.HasRice {
			return a.HasRice
		}
		if a.ProductName != b.ProductName {
			return a.ProductName < b.ProductName
		}
		return a.CustomerName < b.CustomerName
	})
}
