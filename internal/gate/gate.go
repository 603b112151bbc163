package gate

import (
	"context"

	"github.com/stylohub/stylohub-api/internal/domain/profile"
)

// Os dois guards protegem direções opostas da mesma decisão e, por
// política, falham sempre na direção que NÃO bloqueia a navegação:
// nunca prender o usuário atrás de um check quebrado, ao custo de
// rotear errado num erro transitório.

// ======================================================
// TYPES
// ======================================================

type Purpose int

const (
	// RequireOnboarded protege o dashboard: sem perfil → onboarding.
	RequireOnboarded Purpose = iota
	// BlockIfOnboarded protege o onboarding: com perfil → dashboard.
	BlockIfOnboarded
)

type Failure int

const (
	FailureNoToken Failure = iota
	FailureLookup
)

type Status int

const (
	NeedsOnboarding Status = iota
	HasProfile
)

type Decision int

const (
	Allow Decision = iota
	RedirectToOnboarding
	RedirectToDashboard
)

// ======================================================
// POLICY TABLE
// ======================================================

// failurePolicy é a tabela explícita {propósito × falha → status
// assumido}. RequireOnboarded assume "tem perfil" (não redireciona);
// BlockIfOnboarded assume "precisa de onboarding" (não redireciona).
var failurePolicy = map[Purpose]map[Failure]Status{
	RequireOnboarded: {
		FailureNoToken: HasProfile,
		FailureLookup:  HasProfile,
	},
	BlockIfOnboarded: {
		FailureNoToken: NeedsOnboarding,
		FailureLookup:  NeedsOnboarding,
	},
}

// ======================================================
// GUARD
// ======================================================

type Guard struct {
	repo profile.Repository
}

func NewGuard(repo profile.Repository) *Guard {
	return &Guard{repo: repo}
}

// Resolve consulta o perfil uma vez e decide. Qualquer falha cai na
// tabela acima; só um lookup bem-sucedido decide pela presença real da
// linha.
func (g *Guard) Resolve(
	ctx context.Context,
	purpose Purpose,
	clerkUserID string,
) Decision {

	var status Status

	switch {
	case clerkUserID == "":
		status = failurePolicy[purpose][FailureNoToken]
	default:
		row, err := g.repo.GetByClerkUserID(ctx, clerkUserID)
		if err != nil {
			status = failurePolicy[purpose][FailureLookup]
		} else if row != nil {
			status = HasProfile
		} else {
			status = NeedsOnboarding
		}
	}

	switch purpose {
	case RequireOnboarded:
		if status == NeedsOnboarding {
			return RedirectToOnboarding
		}
	case BlockIfOnboarded:
		if status == HasProfile {
			return RedirectToDashboard
		}
	}

	return Allow
}
