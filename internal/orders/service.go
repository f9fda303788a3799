package orders

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/minjipark/tteokbang-backend/internal/pricing"
	"github.com/minjipark/tteokbang-backend/internal/production"
	"github.com/minjipark/tteokbang-backend/internal/products"
	"github.com/minjipark/tteokbang-backend/pkg/db/models"
	pkgerrors "github.com/minjipark/tteokbang-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ProductSource resolves catalog entries for price lookup at order time.
type ProductSource interface {
	FindByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
}

// CustomerSource checks that an order's customer exists.
type CustomerSource interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

// Service exposes order intake, the day list, and the production views.
type Service interface {
	Create(ctx context.Context, input OrderInput) (*production.NumberedOrder, error)
	Get(ctx context.Context, id int64) (*production.NumberedOrder, error)
	Update(ctx context.Context, id int64, input OrderInput) (*production.NumberedOrder, error)
	Delete(ctx context.Context, id int64) error
	SetPaid(ctx context.Context, id int64, paid bool) error
	SetPickedUp(ctx context.Context, id int64, pickedUp bool) error
	ListDay(ctx context.Context, input ListDayInput) ([]DayOrder, error)
	ProductionPlan(ctx context.Context, day production.Day, by production.TaskSort) ([]production.Task, error)
}

type service struct {
	repo      Repository
	products  ProductSource
	customers CustomerSource
	tx        txRunner
	loc       *time.Location
}

// NewService builds an order service with the required dependencies. loc is
// the shop's timezone; pickup-day windows are computed in it.
func NewService(repo Repository, productSource ProductSource, customerSource CustomerSource, tx txRunner, loc *time.Location) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if productSource == nil {
		return nil, fmt.Errorf("product source required")
	}
	if customerSource == nil {
		return nil, fmt.Errorf("customer source required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{
		repo:      repo,
		products:  productSource,
		customers: customerSource,
		tx:        tx,
		loc:       loc,
	}, nil
}

func (s *service) Create(ctx context.Context, input OrderInput) (*production.NumberedOrder, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}
	lines, total, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: input.CustomerID,
		PickupAt:   input.PickupAt.In(s.loc),
		AllDay:     input.AllDay,
		IsPaid:     input.IsPaid,
		Memo:       input.Memo,
		TotalPrice: total,
		Lines:      lines,
	}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.WithTx(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return s.Get(ctx, order.ID)
}

func (s *service) Get(ctx context.Context, id int64) (*production.NumberedOrder, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.numbered(ctx, order)
}

func (s *service) Update(ctx context.Context, id int64, input OrderInput) (*production.NumberedOrder, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, total, err := s.buildLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order.CustomerID = input.CustomerID
	order.PickupAt = input.PickupAt.In(s.loc)
	order.AllDay = input.AllDay
	order.IsPaid = input.IsPaid
	order.Memo = input.Memo
	order.TotalPrice = total

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Save(ctx, order); err != nil {
			return err
		}
		return repo.ReplaceLines(ctx, order.ID, lines)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
	}
	return s.Get(ctx, order.ID)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.findOrder(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order")
	}
	return nil
}

func (s *service) SetPaid(ctx context.Context, id int64, paid bool) error {
	return s.setFlag(ctx, id, "is_paid", paid)
}

func (s *service) SetPickedUp(ctx context.Context, id int64, pickedUp bool) error {
	return s.setFlag(ctx, id, "is_picked_up", pickedUp)
}

func (s *service) setFlag(ctx context.Context, id int64, column string, value bool) error {
	if _, err := s.findOrder(ctx, id); err != nil {
		return err
	}
	err := s.repo.UpdateFields(ctx, id, map[string]any{column: value})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order flag")
	}
	return nil
}

func (s *service) ListDay(ctx context.Context, input ListDayInput) ([]DayOrder, error) {
	if input.Day.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pickup date required")
	}
	by := input.Sort
	if by == "" {
		by = SortByOrderNumber
	}
	if !by.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort mode")
	}

	sequenced, err := s.daySequence(ctx, input.Day)
	if err != nil {
		return nil, err
	}

	rows := make([]DayOrder, 0, len(sequenced))
	for _, order := range sequenced {
		row := DayOrder{NumberedOrder: order}
		if input.Search != "" {
			row.MatchReasons = matchReasons(order.Order, input.Search)
			if len(row.MatchReasons) == 0 {
				continue
			}
		}
		rows = append(rows, row)
	}
	if len(input.IDs) > 0 {
		wanted := make(map[int64]struct{}, len(input.IDs))
		for _, id := range input.IDs {
			wanted[id] = struct{}{}
		}
		kept := rows[:0]
		for _, row := range rows {
			if _, ok := wanted[row.ID]; ok {
				kept = append(kept, row)
			}
		}
		rows = kept
	}
	sortDayOrders(rows, by)
	return rows, nil
}

func (s *service) ProductionPlan(ctx context.Context, day production.Day, by production.TaskSort) ([]production.Task, error) {
	if day.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pickup date required")
	}
	snaps, err := s.daySnapshots(ctx, day)
	if err != nil {
		return nil, err
	}
	tasks := production.Aggregate(snaps, day)
	if by == "" {
		by = production.TaskSortName
	}
	production.SortTasks(tasks, by)
	return tasks, nil
}

func (s *service) validateInput(ctx context.Context, input OrderInput) error {
	if input.CustomerID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id required")
	}
	if input.PickupAt.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "pickup date required")
	}
	if len(input.Lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order needs at least one line")
	}
	for _, line := range input.Lines {
		if !line.Quantity.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "line quantity must be positive")
		}
		if !line.Unit.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown unit")
		}
		if line.UnitPrice != nil && line.UnitPrice.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
		}
	}
	_, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return pkgerrors.New(pkgerrors.CodeValidation, "customer does not exist")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load customer")
	}
	return nil
}

// buildLines snapshots product names and resolves unit prices. Lines without
// an explicit price take the product's stored price for their unit, or zero
// when the product carries none.
func (s *service) buildLines(ctx context.Context, inputs []LineInput) ([]models.OrderLine, decimal.Decimal, error) {
	var ids []int64
	for _, line := range inputs {
		if line.ProductID != nil && *line.ProductID > 0 {
			ids = append(ids, *line.ProductID)
		}
	}
	catalog := make(map[int64]models.Product, len(ids))
	if len(ids) > 0 {
		found, err := s.products.FindByIDs(ctx, ids)
		if err != nil {
			return nil, decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
		}
		for _, product := range found {
			catalog[product.ID] = product
		}
	}

	lines := make([]models.OrderLine, 0, len(inputs))
	total := decimal.Zero
	for i, input := range inputs {
		line := models.OrderLine{
			ProductName: input.Name,
			Quantity:    input.Quantity,
			Unit:        input.Unit,
			HasRice:     input.HasRice,
			Position:    i,
		}
		if input.ProductID != nil {
			product, ok := catalog[*input.ProductID]
			if !ok {
				return nil, decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "line references unknown product")
			}
			id := product.ID
			line.ProductID = &id
			if line.ProductName == "" {
				line.ProductName = product.Name
			}
			if input.UnitPrice == nil {
				line.UnitPrice = pricing.PriceFor(products.PriceSheet(product), input.Unit)
			}
		}
		if input.UnitPrice != nil {
			line.UnitPrice = *input.UnitPrice
		}
		total = total.Add(line.UnitPrice.Mul(input.Quantity))
		lines = append(lines, line)
	}
	return lines, total, nil
}

func (s *service) findOrder(ctx context.Context, id int64) (*models.Order, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) daySnapshots(ctx context.Context, day production.Day) ([]production.Order, error) {
	from := day.Start(s.loc)
	to := day.Next().Start(s.loc)
	rows, err := s.repo.ListByPickupRange(ctx, from, to)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders for day")
	}
	snaps := Snapshots(rows)
	for i := range snaps {
		snaps[i].PickupAt = snaps[i].PickupAt.In(s.loc)
	}
	return snaps, nil
}

func (s *service) daySequence(ctx context.Context, day production.Day) ([]production.NumberedOrder, error) {
	snaps, err := s.daySnapshots(ctx, day)
	if err != nil {
		return nil, err
	}
	return production.AssignSequence(snaps), nil
}

// numbered resolves the order's per-day sequence number by sequencing its
// whole pickup day. Numbers are never stored, so this is the only way to
// answer "which number is order X today".
func (s *service) numbered(ctx context.Context, order *models.Order) (*production.NumberedOrder, error) {
	sequenced, err := s.daySequence(ctx, production.DayOf(order.PickupAt.In(s.loc)))
	if err != nil {
		return nil, err
	}
	for _, row := range sequenced {
		if row.ID == order.ID {
			return &row, nil
		}
	}
	// The order moved days between the load and the sequence query.
	fallback := production.NumberedOrder{Order: Snapshot(*order)}
	return &fallback, nil
}

func matchReasons(order production.Order, query string) []string {
	q := strings.ToLower(query)
	var reasons []string
	if strings.Contains(strings.ToLower(order.CustomerName), q) {
		reasons = append(reasons, MatchCustomerName)
	}
	for _, line := range order.Lines {
		if strings.Contains(strings.ToLower(line.ProductName), q) {
			reasons = append(reasons, MatchProductName)
			break
		}
	}
	if strings.Contains(strings.ToLower(order.Memo), q) {
		reasons = append(reasons, MatchMemo)
	}
	return reasons
}

func sortDayOrders(rows []DayOrder, by ListSort) {
	switch by {
	case SortByPickupTime:
		// All-day orders surface first; timed orders follow by pickup time.
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if a.AllDay != b.AllDay {
				return a.AllDay
			}
			if a.AllDay {
				return false
			}
			return a.PickupAt.Before(b.PickupAt)
		})
	case SortByProductName:
		sort.SliceStable(rows, func(i, j int) bool {
			return firstProductName(rows[i]) < firstProductName(rows[j])
		})
	case SortByPickupStatus:
		sort.SliceStable(rows, func(i, j int) bool {
			return !rows[i].IsPickedUp && rows[j].IsPickedUp
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].OrderNumber < rows[j].OrderNumber
		})
	}
}

func firstProductName(row DayOrder) string {
	if len(row.Order.Lines) == 0 {
		return ""
	}
	return row.Order.Lines[0].ProductName
}
