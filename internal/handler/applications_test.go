package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirewire-dev/hirewire/backend/internal/domain"
)

func TestCanViewApplication(t *testing.T) {
	application := &domain.Application{ID: 1, JobID: 2, CandidateID: 30, EmployerID: 40}

	tests := []struct {
		name      string
		principal *domain.Principal
		want      bool
	}{
		{"applying candidate", &domain.Principal{Role: domain.RoleCandidate, ID: 30}, true},
		{"another candidate", &domain.Principal{Role: domain.RoleCandidate, ID: 31}, false},
		{"hiring employer", &domain.Principal{Role: domain.RoleEmployer, EmployerID: 40}, true},
		{"another employer", &domain.Principal{Role: domain.RoleEmployer, EmployerID: 41}, false},
		{"admin", &domain.Principal{Role: domain.RoleAdmin}, true},
		{"guest", &domain.Principal{Role: domain.RoleGuest, ID: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canViewApplication(tt.principal, application))
		})
	}
}
