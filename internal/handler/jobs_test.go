package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func TestCanManageJob(t *testing.T) {
	job := &domain.Job{ID: 1, EmployerID: 10}

	tests := []struct {
		name      string
		principal *domain.Principal
		want      bool
	}{
		{"owning employer", &domain.Principal{Role: domain.RoleEmployer, EmployerID: 10}, true},
		{"another employer", &domain.Principal{Role: domain.RoleEmployer, EmployerID: 11}, false},
		{"admin", &domain.Principal{Role: domain.RoleAdmin}, true},
		{"candidate", &domain.Principal{Role: domain.RoleCandidate, ID: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canManageJob(tt.principal, job))
		})
	}
}
