package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dtroode/marketmanager-server/internal/model"
)

// RecentUsers is how many of the newest users the dashboard shows.
const RecentUsers = 5

type Statistics struct {
	userStore    model.UserStore
	licenseStore model.LicenseStore
	warningDays  int
	nowFn        func() time.Time
}

func NewStatistics(userStore model.UserStore, licenseStore model.LicenseStore, warningDays int) *Statistics {
	if warningDays <= 0 {
		warningDays = DefaultWarningDays
	}

	return &Statistics{
		userStore:    userStore,
		licenseStore: licenseStore,
		warningDays:  warningDays,
		nowFn:        time.Now,
	}
}

// Collect counts users and licenses.
func (s *Statistics) Collect(ctx context.Context) (model.Statistics, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("failed to list users: %w", err)
	}
	licenses, err := s.licenseStore.List(ctx)
	if err != nil {
		return model.Statistics{}, fmt.Errorf("failed to list licenses: %w", err)
	}

	var stats model.Statistics

	stats.Users.Total = len(users)
	for _, u := range users {
		if u.IsActive {
			stats.Users.Active++
		}
	}
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b model.User) int { return b.CreatedAt.Compare(a.CreatedAt) })
	stats.Users.Recent = make([]model.UserView, 0, RecentUsers)
	for _, u := range sorted[:min(RecentUsers, len(sorted))] {
		stats.Users.Recent = append(stats.Users.Recent, u.Sanitize())
	}

	now := s.nowFn()
	stats.Licenses.Total = len(licenses)
	for _, l := range licenses {
		switch {
		case l.Expired(now):
			stats.Licenses.Expired++
		case l.IsActive:
			stats.Licenses.Active++
			if model.CeilDays(l.ExpiresAt.Sub(now)) <= s.warningDays {
				stats.Licenses.ExpiringSoon++
			}
		}
	}

	return stats, nil
}
