package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

// 每個entity type共用一個partition
const (
	CustomerPartition = "CustomersPartition"
	ProductPartition  = "ProductPartition"
	OrderPartition    = "OrderPartition"
)

// sequence names for the ID allocator
const (
	SeqProduct = "product"
	SeqOrder   = "order"
)

const (
	OrderStatusProcessed      = "Order Processed"
	OrderStatusBacklogged     = "Backlogged"
	OrderStatusCancelled      = "Cancelled"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
)

const (
	AvailabilityInStock    = "In Stock"
	AvailabilityOutOfStock = "Out of Stock"
	AvailabilityPreOrder   = "Pre-Order"
)

// blob namespace for product images
const BlobContainer = "product"

// ID allocation modes
const (
	AllocModeCounter = "counter"
	AllocModeScan    = "scan"
)
