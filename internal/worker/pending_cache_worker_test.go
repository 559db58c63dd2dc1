package worker

import (
	"context"
	"testing"
	"time"

	"sales_ops/internal/api/events"
	ordersmodels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/global"
)

func newTestWorker() *PendingCacheWorker {
	return &PendingCacheWorker{
		interval: 5 * time.Minute,
		dirty:    map[string]struct{}{},
	}
}

// Event ghi đơn hàng phải lấy được tháng từ field Timestamp của document
// và đánh dấu tháng đó cần quét lại.
func TestOnDataChangedMarksOrderMonthDirty(t *testing.T) {
	global.MongoDB_ColNames.Orders = "sales_orders"
	w := newTestWorker()

	w.onDataChanged(context.Background(), events.DataChangeEvent{
		CollectionName: "sales_orders",
		Operation:      events.OpInsert,
		Document:       &ordersmodels.Order{Timestamp: "2024-05-01T10:00:00+07:00"},
	})

	if _, ok := w.dirty["2024-05"]; !ok {
		t.Fatalf("Tháng 2024-05 phải được đánh dấu bẩn sau khi ghi đơn hàng, dirty = %v", w.dirty)
	}
}

func TestOnDataChangedIgnoresOtherCollections(t *testing.T) {
	global.MongoDB_ColNames.Orders = "sales_orders"
	w := newTestWorker()

	w.onDataChanged(context.Background(), events.DataChangeEvent{
		CollectionName: "sales_collections",
		Operation:      events.OpInsert,
		Document:       &ordersmodels.Order{Timestamp: "2024-05-01T10:00:00+07:00"},
	})

	if len(w.dirty) != 0 {
		t.Errorf("Event của collection khác không được đánh dấu tháng bẩn, dirty = %v", w.dirty)
	}
}

func TestOnDataChangedIgnoresUnparseableTimestamp(t *testing.T) {
	global.MongoDB_ColNames.Orders = "sales_orders"
	w := newTestWorker()

	w.onDataChanged(context.Background(), events.DataChangeEvent{
		CollectionName: "sales_orders",
		Operation:      events.OpUpdate,
		Document:       &ordersmodels.Order{Timestamp: "không phải ngày"},
	})

	if len(w.dirty) != 0 {
		t.Errorf("Timestamp không parse được thì không đánh dấu tháng, dirty = %v", w.dirty)
	}
}

func TestDrainDirtyEmptiesSet(t *testing.T) {
	w := newTestWorker()
	w.dirty["2024-04"] = struct{}{}
	w.dirty["2024-05"] = struct{}{}

	months := w.drainDirty()
	if len(months) != 2 {
		t.Fatalf("drainDirty phải trả về 2 tháng, nhận được %v", months)
	}
	if len(w.dirty) != 0 {
		t.Errorf("Sau drainDirty tập bẩn phải rỗng, còn %v", w.dirty)
	}
}
