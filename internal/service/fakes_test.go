package service

import (
	"context"
	"sync"

	"github.com/natheerjardien/cldvpoe/internal/infra/repository/redis_repo"
	"github.com/natheerjardien/cldvpoe/internal/model"
)

// 測試用的in-memory repo, 行為對齊db實作:
// Get不存在回(nil, nil), GetAll回空slice, Delete冪等

type entityKey struct {
	partitionKey string
	rowKey       string
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[entityKey]model.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[entityKey]model.Customer)}
}

func (f *fakeCustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[entityKey{customer.PartitionKey, customer.RowKey}] = *customer
	return nil
}

func (f *fakeCustomerRepo) GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	customer, ok := f.customers[entityKey{partitionKey, rowKey}]
	if !ok {
		return nil, nil
	}
	return &customer, nil
}

func (f *fakeCustomerRepo) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]model.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		result = append(result, customer)
	}
	return result, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return f.CreateCustomer(ctx, customer)
}

func (f *fakeCustomerRepo) DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.customers, entityKey{partitionKey, rowKey})
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[entityKey]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[entityKey]model.Product)}
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[entityKey{product.PartitionKey, product.RowKey}] = *product
	return nil
}

func (f *fakeProductRepo) GetProduct(ctx context.Context, partitionKey, rowKey string) (*model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[entityKey{partitionKey, rowKey}]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]model.Product, 0, len(f.products))
	for _, product := range f.products {
		result = append(result, product)
	}
	return result, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return f.CreateProduct(ctx, product)
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, partitionKey, rowKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, entityKey{partitionKey, rowKey})
	return nil
}

func (f *fakeProductRepo) MaxProductID(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := 0
	for _, product := range f.products {
		if product.ProductID > max {
			max = product.ProductID
		}
	}
	return max, nil
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    map[entityKey]model.Order
	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[entityKey]model.Order)}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[entityKey{order.PartitionKey, order.RowKey}] = *order
	return nil
}

func (f *fakeOrderRepo) GetOrder(ctx context.Context, partitionKey, rowKey string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[entityKey{partitionKey, rowKey}]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]model.Order, 0, len(f.orders))
	for _, order := range f.orders {
		result = append(result, order)
	}
	return result, nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, order *model.Order) error {
	return f.CreateOrder(ctx, order)
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, partitionKey, rowKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, entityKey{partitionKey, rowKey})
	return nil
}

func (f *fakeOrderRepo) MaxOrderID(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	max := 0
	for _, order := range f.orders {
		if order.OrderID > max {
			max = order.OrderID
		}
	}
	return max, nil
}

// fakeSequenceRepo 模擬counter模式的原子遞增
type fakeSequenceRepo struct {
	mu     sync.Mutex
	values map[string]int
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{values: make(map[string]int)}
}

func (f *fakeSequenceRepo) Next(ctx context.Context, name string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name]++
	return f.values[name], nil
}

type producedMessage struct {
	key   string
	value string
}

type fakeProducer struct {
	mu         sync.Mutex
	messages   []producedMessage
	produceErr error
	closed     bool
}

func newFakeProducer() *fakeProducer {
	return &fakeProducer{}
}

func (f *fakeProducer) Produce(ctx context.Context, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.produceErr != nil {
		return f.produceErr
	}
	f.messages = append(f.messages, producedMessage{key: string(key), value: string(value)})
	return nil
}

func (f *fakeProducer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

type storedBlob struct {
	contentType string
	content     []byte
}

type fakeBlobRepo struct {
	mu      sync.Mutex
	blobs   map[string]storedBlob
	baseURL string
	deleted []string
}

func newFakeBlobRepo() *fakeBlobRepo {
	return &fakeBlobRepo{
		blobs:   make(map[string]storedBlob),
		baseURL: "http://localhost:8080",
	}
}

func (f *fakeBlobRepo) Upload(ctx context.Context, name, contentType string, content []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blobs[name] = storedBlob{contentType: contentType, content: content}
	return f.baseURL + "/images/" + name, nil
}

func (f *fakeBlobRepo) Download(ctx context.Context, name string) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	blob, ok := f.blobs[name]
	if !ok {
		return nil, "", redis_repo.ErrBlobNotFound
	}
	return blob.content, blob.contentType, nil
}

func (f *fakeBlobRepo) Delete(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.blobs, name)
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *fakeBlobRepo) DeleteByURL(ctx context.Context, url string) error {
	idx := len(url) - 1
	for idx >= 0 && url[idx] != '/' {
		idx--
	}
	return f.Delete(ctx, url[idx+1:])
}
