package store

import (
	"sync"
	"time"

	"github.com/stylohub/stylohub-api/internal/domain/dashboard"
)

// ======================================================
// VIEW STATE
// ======================================================

type ViewState string

const (
	ViewLogin      ViewState = "login"
	ViewSignup     ViewState = "signup"
	ViewOnboarding ViewState = "onboarding"
	ViewDashboard  ViewState = "dashboard"
)

type DashboardTab string

const (
	TabOverview     DashboardTab = "overview"
	TabSchedule     DashboardTab = "schedule"
	TabFinance      DashboardTab = "finance"
	TabAcademy      DashboardTab = "academy"
	TabProfile      DashboardTab = "profile"
	TabClients      DashboardTab = "clients"
	TabCertificates DashboardTab = "certificates"
	TabPrivacy      DashboardTab = "privacy"
)

// ======================================================
// STATE
// ======================================================

// State é o snapshot completo do dashboard. Tratado como imutável:
// nenhuma ação altera um State publicado; cada mutação constrói um
// snapshot novo e troca o ponteiro.
type State struct {
	User             dashboard.User                `json:"user"`
	Appointments     []dashboard.Appointment       `json:"appointments"`
	Courses          []dashboard.Course            `json:"courses"`
	Clients          []dashboard.Client            `json:"clients"`
	Notifications    []dashboard.InAppNotification `json:"notifications"`
	NotificationJobs []dashboard.NotificationJob   `json:"notification_jobs"`

	CurrentView  ViewState    `json:"current_view"`
	DashboardTab DashboardTab `json:"dashboard_tab"`
}

// ======================================================
// STORE
// ======================================================

type Listener func()

// Store é a fonte única de verdade do estado em memória. Explícito, sem
// estado global de pacote: é construído na composição raiz e passado a
// quem precisa. Cada ação computa um snapshot novo e o troca de forma
// atômica; os listeners são notificados depois da troca, fora do lock,
// sem garantia de ordem entre eles.
type Store struct {
	mu           sync.Mutex
	state        *State
	listeners    map[uint64]Listener
	nextListener uint64

	now  func() time.Time
	seed func() *State
}

type Option func(*Store)

// WithClock injeta o relógio (testes de agendamento).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed substitui o estado inicial (e o alvo do logout).
func WithSeed(seed func() *State) Option {
	return func(s *Store) { s.seed = seed }
}

func New(opts ...Option) *Store {
	s := &Store{
		listeners: make(map[uint64]Listener),
		now:       time.Now,
		seed:      SeedState,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.seed()
	return s
}

// Snapshot devolve o estado corrente. O ponteiro é compartilhado;
// quem lê não pode mutar (disciplina de snapshot imutável).
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registra um listener chamado após cada mutação e devolve a
// função de cancelamento.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// apply é o único caminho de mutação. fn recebe o snapshot anterior e
// devolve o substituto completo, ou nil para declarar a passada como
// no-op (nada é trocado, ninguém é notificado).
func (s *Store) apply(fn func(prev *State) *State) {
	s.mu.Lock()
	next := fn(s.state)
	if next == nil {
		s.mu.Unlock()
		return
	}
	s.state = next

	notify := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		notify = append(notify, l)
	}
	s.mu.Unlock()

	for _, l := range notify {
		l()
	}
}

// ======================================================
// NAVIGATION
// ======================================================

func (s *Store) SetCurrentView(view ViewState) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.CurrentView = view
		return &next
	})
}

func (s *Store) SetDashboardTab(tab DashboardTab) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.DashboardTab = tab
		return &next
	})
}
