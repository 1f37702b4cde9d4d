package store

// Event topics published after committed mutations. Saved topics carry the
// record, deleted topics carry the removed ID, TopicImported carries the
// new document.
const (
	TopicLocationSaved   = "store.location.saved"
	TopicLocationDeleted = "store.location.deleted"
	TopicProductSaved    = "store.product.saved"
	TopicProductDeleted  = "store.product.deleted"
	TopicDeliverySaved   = "store.delivery.saved"
	TopicDeliveryDeleted = "store.delivery.deleted"
	TopicOrderSaved      = "store.order.saved"
	TopicOrderDeleted    = "store.order.deleted"
	TopicSaleSaved       = "store.sale.saved"
	TopicSaleDeleted     = "store.sale.deleted"
	TopicImported        = "store.imported"
)
