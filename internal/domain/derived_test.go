package domain_test

import (
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSalaryBand(t *testing.T) {
	cases := []struct {
		salary float64
		want   string
	}{
		{0, "Entry Level"},
		{49999, "Entry Level"},
		{50000, "Mid Level"},
		{75000, "Mid Level"},
		{99999, "Mid Level"},
		{100000, "Senior Level"},
		{199999, "Senior Level"},
		{200000, "Executive"},
		{1000000, "Executive"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.SalaryBand(tc.salary), "salary %.0f", tc.salary)
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://files.example.com/resume.pdf", "pdf"},
		{"https://files.example.com/resume.DOCX", "docx"},
		{"https://files.example.com/dir.v2/resume.pdf?token=abc", "pdf"},
		{"https://files.example.com/resume.pdf#page=2", "pdf"},
		{"https://files.example.com/resume", "unknown"},
		{"https://files.example.com/resume.", "unknown"},
		{"https://files.example.com/", "unknown"},
		{"resume.tar.gz", "gz"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.FileExtension(tc.url), "url %s", tc.url)
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "blue", domain.StatusColor(domain.ApplicationStatusApplied))
	assert.Equal(t, "green", domain.StatusColor(domain.ApplicationStatusShortlisted))
	assert.Equal(t, "red", domain.StatusColor(domain.ApplicationStatusRejected))
	assert.Equal(t, "gray", domain.StatusColor("withdrawn"))
}

func TestAgeInDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Should round partial days up", func(t *testing.T) {
		appliedAt := now.Add(-36 * time.Hour)
		assert.Equal(t, 2, domain.AgeInDays(appliedAt, now))
	})

	t.Run("Should count exact days", func(t *testing.T) {
		appliedAt := now.Add(-72 * time.Hour)
		assert.Equal(t, 3, domain.AgeInDays(appliedAt, now))
	})

	t.Run("Should report zero for a submission just made", func(t *testing.T) {
		assert.Equal(t, 0, domain.AgeInDays(now, now))
	})

	t.Run("Should clamp future timestamps to zero", func(t *testing.T) {
		appliedAt := now.Add(1 * time.Hour)
		assert.Equal(t, 0, domain.AgeInDays(appliedAt, now))
	})
}

func TestNewApplicationView(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	salary := 75000.0

	app := domain.Application{
		ID:        "app-1",
		Status:    domain.ApplicationStatusApplied,
		AppliedAt: now.Add(-48 * time.Hour),
		JobSalary: &salary,
	}

	view := domain.NewApplicationView(app, now)
	assert.Equal(t, "blue", view.StatusColor)
	assert.Equal(t, 2, view.AgeDays)
	assert.NotNil(t, view.SalaryBand)
	assert.Equal(t, "Mid Level", *view.SalaryBand)
}

func TestNewApplicationViewWithoutSalary(t *testing.T) {
	view := domain.NewApplicationView(domain.Application{
		Status:    domain.ApplicationStatusRejected,
		AppliedAt: time.Now(),
	}, time.Now())

	assert.Equal(t, "red", view.StatusColor)
	assert.Nil(t, view.SalaryBand)
}
