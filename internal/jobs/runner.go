package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/stylohub/stylohub-api/internal/store"
)

// Runner dispara a varredura periódica de jobs de notificação do
// store. Poll, não push: um job que venceu com o runner parado dispara
// na próxima passada, nunca é perdido nem rearmado.
type Runner struct {
	store *store.Store
	cron  *cron.Cron
	spec  string
}

func NewRunner(st *store.Store, spec string) *Runner {
	return &Runner{
		store: st,
		cron:  cron.New(cron.WithSeconds()),
		spec:  spec,
	}
}

func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.store.ProcessDueJobs); err != nil {
		return err
	}

	r.cron.Start()
	log.Printf("notification job scan started (%s)", r.spec)
	return nil
}

func (r *Runner) Stop() {
	<-r.cron.Stop().Done()
}
