package main

import (
	"context"
	"time"

	authsvc "sales_ops/internal/api/auth/service"
	"sales_ops/internal/global"
	"sales_ops/internal/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Seed tài khoản admin từ cấu hình (ADMIN_PASSWORD rỗng = bỏ qua)
	cfg := global.ServerConfig
	log.Info("🔄 [INIT] Step 1: Seeding admin account...")
	if err := userService.SeedAdmin(ctx, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.WithError(err).Error("❌ [INIT] Step 1: Failed to seed admin account")
		log.Warnf("Failed to seed admin account: %v", err)
	} else {
		log.Info("✅ [INIT] Step 1: Admin account ready")
	}

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
