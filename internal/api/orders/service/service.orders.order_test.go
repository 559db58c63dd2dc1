package orderssvc

import (
	"testing"

	ordersdto "sales_ops/internal/api/orders/dto"
	models "sales_ops/internal/api/orders/models"
)

func TestBuildItemsComputesLineAndOrderTotals(t *testing.T) {
	items, total, err := buildItems([]ordersdto.OrderItemInput{
		{Name: "Gạch men", Qty: 2, Rate: 100, Discount: 0},
		{Name: "Xi măng", Qty: 10, Rate: 50, Discount: 10},
	})
	if err != nil {
		t.Fatalf("buildItems trả về lỗi: %v", err)
	}
	if items[0].Total != 200 {
		t.Errorf("Dòng không discount phải có total 200, nhận được %g", items[0].Total)
	}
	if items[1].Total != 450 {
		t.Errorf("Dòng discount 10%% phải có total 450, nhận được %g", items[1].Total)
	}
	if total != 650 {
		t.Errorf("Tổng đơn phải là 650, nhận được %g", total)
	}
}

func TestBuildItemsRejectsBlankName(t *testing.T) {
	_, _, err := buildItems([]ordersdto.OrderItemInput{
		{Name: "   ", Qty: 1, Rate: 10},
	})
	if err == nil {
		t.Fatalf("Dòng hàng tên trắng phải bị từ chối")
	}
}

func TestBuildItemsRejectsEmptyList(t *testing.T) {
	_, _, err := buildItems(nil)
	if err == nil {
		t.Fatalf("Đơn không có dòng hàng phải bị từ chối")
	}
}

func TestSplitDeliveryFull(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Gạch men", Qty: 2, Rate: 100, Discount: 0, Total: 200},
	}
	delivered, remaining, err := splitDelivery(items, []float64{2})
	if err != nil {
		t.Fatalf("splitDelivery trả về lỗi: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("Giao đủ không được còn phần dư, còn %d dòng", len(remaining))
	}
	if len(delivered) != 1 || delivered[0].Qty != 2 || delivered[0].Total != 200 {
		t.Errorf("Phần đã giao sai: %+v", delivered)
	}
	if sumItemTotals(delivered) != 200 {
		t.Errorf("Tổng phần đã giao phải là 200, nhận được %g", sumItemTotals(delivered))
	}
}

func TestSplitDeliveryPartial(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Gạch men", Qty: 2, Rate: 100, Discount: 0, Total: 200},
	}
	delivered, remaining, err := splitDelivery(items, []float64{1})
	if err != nil {
		t.Fatalf("splitDelivery trả về lỗi: %v", err)
	}
	if len(delivered) != 1 || delivered[0].Qty != 1 || delivered[0].Total != 100 {
		t.Errorf("Phần đã giao sai: %+v", delivered)
	}
	if len(remaining) != 1 || remaining[0].Qty != 1 || remaining[0].Total != 100 {
		t.Errorf("Phần còn lại sai: %+v", remaining)
	}
	// Bảo toàn số lượng theo từng dòng
	if delivered[0].Qty+remaining[0].Qty != items[0].Qty {
		t.Errorf("Tổng qty giao + dư phải bằng qty gốc")
	}
}

func TestSplitDeliveryIgnoresDiscountAfterCreation(t *testing.T) {
	// Giá trị dòng sau giao tính theo qty*rate, không áp lại discount
	items := []models.OrderItem{
		{Name: "Xi măng", Qty: 10, Rate: 50, Discount: 10, Total: 450},
	}
	delivered, remaining, err := splitDelivery(items, []float64{4})
	if err != nil {
		t.Fatalf("splitDelivery trả về lỗi: %v", err)
	}
	if delivered[0].Total != 200 {
		t.Errorf("Phần giao phải có total 4*50=200, nhận được %g", delivered[0].Total)
	}
	if remaining[0].Total != 300 {
		t.Errorf("Phần dư phải có total 6*50=300, nhận được %g", remaining[0].Total)
	}
}

func TestSplitDeliveryValidatesQuantities(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Gạch men", Qty: 2, Rate: 100},
	}
	if _, _, err := splitDelivery(items, []float64{3}); err == nil {
		t.Errorf("Giao nhiều hơn qty gốc phải bị từ chối")
	}
	if _, _, err := splitDelivery(items, []float64{-1}); err == nil {
		t.Errorf("Số lượng giao âm phải bị từ chối")
	}
	if _, _, err := splitDelivery(items, []float64{1, 1}); err == nil {
		t.Errorf("Số phần tử không khớp số dòng hàng phải bị từ chối")
	}
}

func TestOrderEffectiveTotalAndStatus(t *testing.T) {
	o := models.Order{Total: 500}
	if o.EffectiveTotal() != 500 {
		t.Errorf("Chưa có finalTotal phải đọc total, nhận được %g", o.EffectiveTotal())
	}
	o.FinalTotal = 300
	if o.EffectiveTotal() != 300 {
		t.Errorf("Có finalTotal phải đọc finalTotal, nhận được %g", o.EffectiveTotal())
	}
	if o.EffectiveStatus() != models.StatusPending {
		t.Errorf("Status rỗng phải đọc là pending")
	}
	o.Status = models.StatusDelivered
	if o.EffectiveStatus() != models.StatusDelivered {
		t.Errorf("Status delivered phải giữ nguyên")
	}
}
