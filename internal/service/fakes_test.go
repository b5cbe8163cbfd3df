package service

import (
	"context"
	"errors"
	"sort"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
)

// fakes em memória para testar os serviços sem redis/postgres

type fakeCartRepo struct {
	carts map[string]*model.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*model.Cart)}
}

func (f *fakeCartRepo) cart(userID string) *model.Cart {
	if c, ok := f.carts[userID]; ok {
		return c
	}
	c := &model.Cart{UserID: userID}
	f.carts[userID] = c
	return c
}

func (f *fakeCartRepo) Get(ctx context.Context, userID string) (*model.Cart, error) {
	return f.cart(userID), nil
}

func (f *fakeCartRepo) AddLine(ctx context.Context, userID string, snapshot model.CartLine) error {
	f.cart(userID).Add(snapshot)
	return nil
}

func (f *fakeCartRepo) SetQuantity(ctx context.Context, userID string, productID string, quantity int) error {
	f.cart(userID).SetQuantity(productID, quantity)
	return nil
}

func (f *fakeCartRepo) RemoveLine(ctx context.Context, userID string, productID string) error {
	f.cart(userID).Remove(productID)
	return nil
}

func (f *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	f.cart(userID).Clear()
	return nil
}

type fakeProductRepo struct {
	products map[string]model.Product
}

func newFakeProductRepo(products ...model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]model.Product)}
	for _, p := range products {
		repo.products[p.ProductID] = p
	}
	return repo
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	f.products[product.ProductID] = *product
	return nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	f.products[product.ProductID] = *product
	return nil
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, productID string) error {
	delete(f.products, productID)
	return nil
}

func (f *fakeProductRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeOrderRepo struct {
	orders     []*model.Order
	failCreate error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	stored := *order
	stored.Items = append([]model.OrderItem(nil), order.Items...)
	f.orders = append(f.orders, &stored)
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	for _, o := range f.orders {
		if o.OrderID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var out []model.Order
	// inserção mais recente primeiro
	for i := len(f.orders) - 1; i >= 0; i-- {
		o := f.orders[i]
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetActiveOrders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	for i := len(f.orders) - 1; i >= 0; i-- {
		if !f.orders[i].Archived {
			out = append(out, *f.orders[i])
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	for _, o := range f.orders {
		if o.OrderID == id {
			o.Status = status
			return nil
		}
	}
	return errors.New("pedido não existe")
}

func (f *fakeOrderRepo) ArchiveOrder(ctx context.Context, id string) error {
	for _, o := range f.orders {
		if o.OrderID == id {
			o.Archived = true
			return nil
		}
	}
	return errors.New("pedido não existe")
}

func (f *fakeOrderRepo) OrderStats(ctx context.Context) (int64, float64, error) {
	var revenue float64
	for _, o := range f.orders {
		v, _ := o.Total.Float64()
		revenue += v
	}
	return int64(len(f.orders)), revenue, nil
}

type fakeUserRepo struct {
	profiles map[string]model.Profile
	roles    map[string]model.UserRole
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		profiles: make(map[string]model.Profile),
		roles:    make(map[string]model.UserRole),
	}
}

func (f *fakeUserRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeUserRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	for _, r := range f.roles {
		if r.UserID == userID && r.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role string) ([]model.UserRole, error) {
	var out []model.UserRole
	for _, r := range f.roles {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GrantRole(ctx context.Context, userID, role string) (*model.UserRole, error) {
	userRole := model.UserRole{ID: "role-" + userID, UserID: userID, Role: role}
	f.roles[userRole.ID] = userRole
	return &userRole, nil
}

func (f *fakeUserRepo) RevokeRole(ctx context.Context, id string) error {
	delete(f.roles, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	roles, _ := f.ListByRole(ctx, role)
	return int64(len(roles)), nil
}

type fakeEventRepo struct {
	records []model.OrderEventRecord
}

func (f *fakeEventRepo) AppendEvent(ctx context.Context, record *model.OrderEventRecord) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeEventRepo) ListEventsByOrderID(ctx context.Context, orderID string) ([]model.OrderEventRecord, error) {
	var out []model.OrderEventRecord
	for _, r := range f.records {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}

type publishedEvent struct {
	kind    string
	orderID string
	from    model.OrderStatus
	to      model.OrderStatus
}

type fakePublisher struct {
	published []publishedEvent
}

func (f *fakePublisher) OrderCreated(ctx context.Context, order *model.Order) error {
	f.published = append(f.published, publishedEvent{kind: "created", orderID: order.OrderID})
	return nil
}

func (f *fakePublisher) OrderStatusChanged(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	f.published = append(f.published, publishedEvent{kind: "status", orderID: orderID, from: from, to: to})
	return nil
}

func (f *fakePublisher) OrderArchived(ctx context.Context, orderID string, status model.OrderStatus) error {
	f.published = append(f.published, publishedEvent{kind: "archived", orderID: orderID, from: status})
	return nil
}
