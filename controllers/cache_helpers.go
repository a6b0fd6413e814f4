package controllers

import (
	"context"

	"Yatube/monitoring"
	"Yatube/utils/logger"

	"go.uber.org/zap"
)

// ClearPageCache drops every cached page so the next request renders fresh data.
func (server *Server) ClearPageCache(ctx context.Context) error {
	if err := server.Cache.Clear(ctx); err != nil {
		logger.Logger.Error("page cache clear failed", zap.Error(err))
		return err
	}
	monitoring.PageCacheClears.Inc()
	return nil
}
