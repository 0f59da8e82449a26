// Copyright (c) 2026 Alor Foundation. All rights reserved.

/*
Package dashboard aggregates cross-domain statistics for the admin panel.

It reads user and contact-message counters plus a short activity feed
derived from the newest accounts. Everything is computed on demand; there
is no materialized state.
*/
package dashboard

import (
	"context"
	"time"
)

// Stats is the aggregate payload served to the admin dashboard.
type Stats struct {
	TotalUsers        int        `json:"totalUsers"`
	ActiveUsers       int        `json:"activeUsers"`
	NewUsersThisMonth int        `json:"newUsersThisMonth"`
	AdminCount        int        `json:"adminCount"`
	UnreadMessages    int        `json:"unreadMessages"`
	RecentActivity    []Activity `json:"recentActivity"`
}

// Activity is one row of the dashboard's recent-activity feed.
type Activity struct {
	User   string    `json:"user"`
	Action string    `json:"action"`
	Time   time.Time `json:"time"`
	Type   string    `json:"type"`
}

// RecentUser is the slim account projection the activity feed is built from.
type RecentUser struct {
	Name        string
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// Repository defines the read-only aggregation queries of the dashboard.
type Repository interface {
	CountUsers(context context.Context) (int, error)
	CountAdmins(context context.Context) (int, error)
	CountUsersActiveSince(context context.Context, since time.Time) (int, error)
	CountUsersCreatedSince(context context.Context, since time.Time) (int, error)
	CountUnreadMessages(context context.Context) (int, error)
	RecentUsers(context context.Context, limit int) ([]RecentUser, error)
}
