// Copyright (c) 2026 Alor Foundation. All rights reserved.

package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// activeWindow is how far back a login still counts as "active".
	activeWindow = 30 * 24 * time.Hour
	// recentActivityLimit caps the activity feed.
	recentActivityLimit = 10
	// loginGrace separates the registration login from a genuine return
	// visit. The first session lands within this window of account creation.
	loginGrace = time.Minute
)

// Activity feed labels and severities.
const (
	actionLoggedIn        = "logged in"
	actionNewRegistration = "new registration"
	typeSuccess           = "success"
	typeInfo              = "info"
)

// Service computes the admin dashboard aggregates.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a dashboard [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

/*
Stats gathers every dashboard counter plus the recent-activity feed.

"Active" means a login within the last 30 days. "New this month" counts
from the first day of the current calendar month. The first failing query
aborts the whole aggregation.

Parameters:
  - context: context.Context

Returns:
  - *Stats: Aggregated dashboard payload
  - error: The first persistence failure encountered
*/
func (service *Service) Stats(context context.Context) (*Stats, error) {
	now := service.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalUsers, err := service.repo.CountUsers(context)
	if err != nil {
		return nil, fmt.Errorf("dashboard_total_users_failed: %w", err)
	}

	adminCount, err := service.repo.CountAdmins(context)
	if err != nil {
		return nil, fmt.Errorf("dashboard_admin_count_failed: %w", err)
	}

	activeUsers, err := service.repo.CountUsersActiveSince(context, now.Add(-activeWindow))
	if err != nil {
		return nil, fmt.Errorf("dashboard_active_users_failed: %w", err)
	}

	newUsersThisMonth, err := service.repo.CountUsersCreatedSince(context, monthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard_new_users_failed: %w", err)
	}

	unreadMessages, err := service.repo.CountUnreadMessages(context)
	if err != nil {
		return nil, fmt.Errorf("dashboard_unread_messages_failed: %w", err)
	}

	recentUsers, err := service.repo.RecentUsers(context, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard_recent_users_failed: %w", err)
	}

	stats := &Stats{
		TotalUsers:        totalUsers,
		ActiveUsers:       activeUsers,
		NewUsersThisMonth: newUsersThisMonth,
		AdminCount:        adminCount,
		UnreadMessages:    unreadMessages,
		RecentActivity:    buildActivity(recentUsers),
	}

	service.logger.Debug("dashboard_stats_computed",
		slog.Int("total_users", totalUsers),
		slog.Int("unread_messages", unreadMessages))
	return stats, nil
}

// buildActivity labels each recent account. A login more than loginGrace
// after account creation reads as a return visit; anything else, including
// accounts that never logged in, reads as a fresh registration.
func buildActivity(users []RecentUser) []Activity {
	feed := make([]Activity, 0, len(users))
	for _, user := range users {
		entry := Activity{
			User:   user.Name,
			Action: actionNewRegistration,
			Time:   user.CreatedAt,
			Type:   typeInfo,
		}

		if user.LastLoginAt != nil {
			entry.Time = *user.LastLoginAt
			entry.Type = typeSuccess
			if user.LastLoginAt.After(user.CreatedAt.Add(loginGrace)) {
				entry.Action = actionLoggedIn
			}
		}

		feed = append(feed, entry)
	}
	return feed
}
