// Package worker - PendingCacheWorker giữ cache bảng hàng chờ giao luôn nóng.
// Hệ thống vẫn đúng khi không có worker (cache miss sẽ quét lại ngay trong
// request); worker chỉ tính trước các tháng vừa có dữ liệu thay đổi.
package worker

import (
	"context"
	"sync"
	"time"

	"sales_ops/internal/api/events"
	reportsvc "sales_ops/internal/api/report/service"
	"sales_ops/internal/global"
	"sales_ops/internal/logger"
	"sales_ops/internal/periods"
)

// PendingCacheWorker gom các tháng bị bẩn từ events ghi đơn hàng rồi
// quét lại theo chu kỳ.
type PendingCacheWorker struct {
	reportService *reportsvc.ReportService
	interval      time.Duration // Khoảng thời gian giữa các lần chạy

	mu    sync.Mutex
	dirty map[string]struct{} // Các khóa tháng (YYYY-MM) cần quét lại
}

// NewPendingCacheWorker tạo mới PendingCacheWorker và đăng ký nhận
// data-change events của collection đơn hàng.
// Tham số interval: khoảng cách giữa các lần quét (mặc định: 5 phút).
func NewPendingCacheWorker(interval time.Duration) (*PendingCacheWorker, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 5 * time.Minute
	}
	w := &PendingCacheWorker{
		reportService: reportService,
		interval:      interval,
		dirty:         map[string]struct{}{},
	}
	events.OnDataChanged(w.onDataChanged)
	return w, nil
}

// onDataChanged xóa cache của tháng vừa thay đổi và đánh dấu tháng bẩn.
func (w *PendingCacheWorker) onDataChanged(ctx context.Context, e events.DataChangeEvent) {
	if e.CollectionName != global.MongoDB_ColNames.Orders {
		return
	}
	timestamp := events.GetStringField(e.Document, "Timestamp")
	t, ok := periods.ParseDate(timestamp)
	if !ok {
		return
	}
	month := periods.MonthKey(t)
	reportsvc.InvalidatePendingMonth(month)

	w.mu.Lock()
	w.dirty[month] = struct{}{}
	w.mu.Unlock()
}

// drainDirty lấy và xóa toàn bộ khóa tháng bẩn hiện có.
func (w *PendingCacheWorker) drainDirty() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	months := make([]string, 0, len(w.dirty))
	for month := range w.dirty {
		months = append(months, month)
	}
	w.dirty = map[string]struct{}{}
	return months
}

// Start chạy worker trong vòng lặp: mỗi interval quét lại các tháng bẩn.
func (w *PendingCacheWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📊 [PENDING_CACHE] Starting Pending Cache Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [PENDING_CACHE] Pending Cache Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [PENDING_CACHE] Panic khi quét lại cache, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				months := w.drainDirty()
				for _, month := range months {
					if err := w.reportService.RefreshPendingMonth(ctx, month); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"month": month,
						}).Warn("📊 [PENDING_CACHE] Quét lại tháng thất bại, sẽ thử lại lần sau")
						w.mu.Lock()
						w.dirty[month] = struct{}{}
						w.mu.Unlock()
					}
				}
			}()
		}
	}
}
