package store

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedseem-infohub/Yelo-Backend/models"
)

// Memory is an in-memory implementation of every store interface with the
// same query semantics as the Mongo one. It backs the handler tests; it is
// not safe for concurrent writers.
type Memory struct {
	UsersData        []models.User
	OrdersData       []models.Order
	ProductsData     []models.Product
	VendorsData      []models.Vendor
	VendorOrdersData []models.VendorOrder

	// Err, when set, is returned by every method; simulates a store outage.
	Err error
}

// NewMemory returns a Store with all collections backed by m. Method-name
// collisions between the interfaces (FindByID, Delete, ...) make it
// impossible for one type to satisfy all five, hence the thin facades.
func NewMemory() (*Memory, *Store) {
	m := &Memory{}
	return m, &Store{
		Users:        m,
		Orders:       m,
		Products:     memProducts{m},
		Vendors:      memVendors{m},
		VendorOrders: memVendorOrders{m},
	}
}

type memProducts struct{ m *Memory }

func (f memProducts) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return f.m.FindProductsByIDs(ctx, ids)
}
func (f memProducts) FindByVendorSlug(ctx context.Context, slug, sortKey string, skip, limit int64) ([]models.Product, error) {
	return f.m.FindByVendorSlug(ctx, slug, sortKey, skip, limit)
}
func (f memProducts) CountByVendorSlug(ctx context.Context, slug string) (int64, error) {
	return f.m.CountByVendorSlug(ctx, slug)
}
func (f memProducts) FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.Product, error) {
	return f.m.FindForVendor(ctx, vendor)
}

type memVendors struct{ m *Memory }

func (f memVendors) Create(ctx context.Context, v *models.Vendor) error { return f.m.Create(ctx, v) }
func (f memVendors) FindAll(ctx context.Context) ([]models.Vendor, error) {
	return f.m.FindAll(ctx)
}
func (f memVendors) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	return f.m.FindVendorByID(ctx, id)
}
func (f memVendors) FindActiveBySlug(ctx context.Context, slug string) (*models.Vendor, error) {
	return f.m.FindActiveBySlug(ctx, slug)
}
func (f memVendors) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.m.SlugExists(ctx, slug)
}
func (f memVendors) Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error) {
	return f.m.Update(ctx, id, u)
}
func (f memVendors) UpdateCommission(ctx context.Context, id primitive.ObjectID, commission float64) (*models.Vendor, error) {
	return f.m.UpdateCommission(ctx, id, commission)
}
func (f memVendors) Delete(ctx context.Context, id primitive.ObjectID) error {
	return f.m.DeleteVendor(ctx, id)
}

type memVendorOrders struct{ m *Memory }

func (f memVendorOrders) FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.VendorOrder, error) {
	return f.m.FindVendorOrders(ctx, vendor)
}

func inRange(t, from, until time.Time) bool {
	if t.Before(from) {
		return false
	}
	return until.IsZero() || t.Before(until)
}

// ---- UserStore ----

func (m *Memory) CountActive(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, u := range m.UsersData {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CountAll(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return int64(len(m.UsersData)), nil
}

func (m *Memory) CountCreatedBetween(ctx context.Context, from, until time.Time) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, u := range m.UsersData {
		if inRange(u.CreatedAt, from, until) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	users := append([]models.User(nil), m.UsersData...)
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	if skip >= int64(len(users)) {
		return nil, nil
	}
	users = users[skip:]
	if limit > 0 && int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (m *Memory) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.UsersData {
		if m.UsersData[i].ID == id {
			u := m.UsersData[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.UsersData {
		if m.UsersData[i].ID == id {
			m.UsersData = append(m.UsersData[:i], m.UsersData[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) UpdateProfile(ctx context.Context, id primitive.ObjectID, p ProfileUpdate) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.UsersData {
		if m.UsersData[i].ID != id {
			continue
		}
		u := &m.UsersData[i]
		if p.Name != nil {
			u.Name = *p.Name
		}
		if p.Phone != nil {
			u.Phone = *p.Phone
		}
		if p.Avatar != nil {
			u.Avatar = *p.Avatar
		}
		if u.Name != "" && u.Email != "" && u.Phone != "" {
			u.IsProfileComplete = true
		}
		u.UpdatedAt = time.Now()
		out := *u
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateAddress(ctx context.Context, id primitive.ObjectID, a models.Address) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.UsersData {
		if m.UsersData[i].ID != id {
			continue
		}
		m.UsersData[i].Address = &a
		m.UsersData[i].UpdatedAt = time.Now()
		out := m.UsersData[i]
		return &out, nil
	}
	return nil, ErrNotFound
}

// ---- OrderStore ----

func (m *Memory) RevenueBetween(ctx context.Context, from, until time.Time) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var total float64
	for _, o := range m.OrdersData {
		if o.IsRevenue() && inRange(o.CreatedAt, from, until) {
			total += o.TotalAmount
		}
	}
	return total, nil
}

func (m *Memory) CountBetween(ctx context.Context, from, until time.Time) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, o := range m.OrdersData {
		if inRange(o.CreatedAt, from, until) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) CategoryRevenue(ctx context.Context, from time.Time, limit int64) ([]CategoryRevenue, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	byID := map[primitive.ObjectID]models.Product{}
	for _, p := range m.ProductsData {
		byID[p.ID] = p
	}
	agg := map[string]*CategoryRevenue{}
	for _, o := range m.OrdersData {
		if !o.IsRevenue() || !inRange(o.CreatedAt, from, time.Time{}) {
			continue
		}
		for _, item := range o.Items {
			p, ok := byID[item.ProductID]
			if !ok {
				continue
			}
			row, ok := agg[p.Category]
			if !ok {
				row = &CategoryRevenue{Category: p.Category}
				agg[p.Category] = row
			}
			row.Revenue += item.Price * float64(item.Quantity)
			row.Orders++
		}
	}
	rows := make([]CategoryRevenue, 0, len(agg))
	for _, r := range agg {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	if limit > 0 && int64(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (m *Memory) PaymentMethodBreakdown(ctx context.Context, from time.Time) ([]PaymentMethodStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	agg := map[string]*PaymentMethodStats{}
	for _, o := range m.OrdersData {
		if !inRange(o.CreatedAt, from, time.Time{}) {
			continue
		}
		row, ok := agg[o.PaymentMethod]
		if !ok {
			row = &PaymentMethodStats{Method: o.PaymentMethod}
			agg[o.PaymentMethod] = row
		}
		row.Count++
		row.Revenue += o.TotalAmount
	}
	rows := make([]PaymentMethodStats, 0, len(agg))
	for _, r := range agg {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Method < rows[j].Method })
	return rows, nil
}

func (m *Memory) StatsByUser(ctx context.Context, userIDs []primitive.ObjectID) ([]UserOrderStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	want := map[primitive.ObjectID]bool{}
	for _, id := range userIDs {
		want[id] = true
	}
	agg := map[primitive.ObjectID]*UserOrderStats{}
	for _, o := range m.OrdersData {
		if !want[o.UserID] {
			continue
		}
		row, ok := agg[o.UserID]
		if !ok {
			row = &UserOrderStats{UserID: o.UserID}
			agg[o.UserID] = row
		}
		row.TotalOrders++
		row.TotalRevenue += o.TotalAmount
	}
	rows := make([]UserOrderStats, 0, len(agg))
	for _, r := range agg {
		rows = append(rows, *r)
	}
	return rows, nil
}

func (m *Memory) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var orders []models.Order
	for _, o := range m.OrdersData {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (m *Memory) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Order, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	want := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var orders []models.Order
	for _, o := range m.OrdersData {
		if want[o.ID] {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *Memory) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, o := range m.OrdersData {
		if o.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *Memory) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var kept []models.Order
	var deleted int64
	for _, o := range m.OrdersData {
		if o.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, o)
	}
	m.OrdersData = kept
	return deleted, nil
}

// ---- ProductStore ----

func (m *Memory) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	want := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var products []models.Product
	for _, p := range m.ProductsData {
		if want[p.ID] {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *Memory) FindByVendorSlug(ctx context.Context, slug, sortKey string, skip, limit int64) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var products []models.Product
	for _, p := range m.ProductsData {
		if p.VendorSlug == slug && p.IsActive {
			products = append(products, p)
		}
	}
	switch sortKey {
	case "price-low":
		sort.Slice(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-high":
		sort.Slice(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "newest":
		sort.Slice(products, func(i, j int) bool { return products[i].DateAdded.After(products[j].DateAdded) })
	default: // popular
		sort.Slice(products, func(i, j int) bool {
			if products[i].Reviews != products[j].Reviews {
				return products[i].Reviews > products[j].Reviews
			}
			return products[i].Rating > products[j].Rating
		})
	}
	if skip >= int64(len(products)) {
		return nil, nil
	}
	products = products[skip:]
	if limit > 0 && int64(len(products)) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (m *Memory) CountByVendorSlug(ctx context.Context, slug string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, p := range m.ProductsData {
		if p.VendorSlug == slug && p.IsActive {
			n++
		}
	}
	return n, nil
}

func fuzzyMatch(firstWord, value string) bool {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(firstWord))
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

func (m *Memory) FindForVendor(ctx context.Context, vendor models.Vendor) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	first := FirstWord(vendor.Name)
	var products []models.Product
	for _, p := range m.ProductsData {
		if !p.IsActive {
			continue
		}
		if p.VendorSlug == vendor.Slug || p.Brand == vendor.Name || fuzzyMatch(first, p.Brand) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	return products, nil
}

// ---- VendorStore ----

func (m *Memory) Create(ctx context.Context, v *models.Vendor) error {
	if m.Err != nil {
		return m.Err
	}
	for _, existing := range m.VendorsData {
		if existing.Slug == v.Slug || strings.EqualFold(existing.Email, v.Email) {
			return ErrDuplicate
		}
	}
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	m.VendorsData = append(m.VendorsData, *v)
	return nil
}

func (m *Memory) FindAll(ctx context.Context) ([]models.Vendor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Vendor(nil), m.VendorsData...), nil
}

func (m *Memory) FindVendorByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.VendorsData {
		if m.VendorsData[i].ID == id {
			v := m.VendorsData[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindActiveBySlug(ctx context.Context, slug string) (*models.Vendor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.VendorsData {
		if m.VendorsData[i].Slug == slug && m.VendorsData[i].IsActive {
			v := m.VendorsData[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, v := range m.VendorsData {
		if v.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.VendorsData {
		if m.VendorsData[i].ID != id {
			continue
		}
		v := &m.VendorsData[i]
		if u.Name != nil {
			v.Name = *u.Name
		}
		if u.Slug != nil {
			v.Slug = *u.Slug
		}
		if u.Email != nil {
			v.Email = *u.Email
		}
		if u.Phone != nil {
			v.Phone = *u.Phone
		}
		if u.Address != nil {
			v.Address = *u.Address
		}
		if u.OwnerName != nil {
			v.OwnerName = *u.OwnerName
		}
		if u.Owner != nil {
			v.Owner = *u.Owner
		}
		if u.Commission != nil {
			v.Commission = *u.Commission
		}
		if u.Status != nil {
			v.Status = *u.Status
		}
		if u.Rating != nil {
			v.Rating = *u.Rating
		}
		if u.IsActive != nil {
			v.IsActive = *u.IsActive
		}
		v.UpdatedAt = time.Now()
		out := *v
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateCommission(ctx context.Context, id primitive.ObjectID, commission float64) (*models.Vendor, error) {
	return m.Update(ctx, id, models.VendorUpdate{Commission: &commission})
}

func (m *Memory) DeleteVendor(ctx context.Context, id primitive.ObjectID) error {
	if m.Err != nil {
		return m.Err
	}
	for i := range m.VendorsData {
		if m.VendorsData[i].ID == id {
			m.VendorsData = append(m.VendorsData[:i], m.VendorsData[i+1:]...)
			return nil
		}
	}
	return nil
}

// ---- VendorOrderStore ----

func (m *Memory) FindVendorOrders(ctx context.Context, vendor models.Vendor) ([]models.VendorOrder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	first := FirstWord(vendor.Name)
	var rows []models.VendorOrder
	for _, vo := range m.VendorOrdersData {
		if vo.VendorID == vendor.ID || vo.VendorName == vendor.Name || fuzzyMatch(first, vo.VendorName) {
			rows = append(rows, vo)
		}
	}
	return rows, nil
}
