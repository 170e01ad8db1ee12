package jobs

import (
	"context"

	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/sirupsen/logrus"
)

// ReferenceAudit rescans every tracked text field and re-syncs the edge
// table against it. The per-save sync keeps edges current in the normal
// path; the audit repairs drift from out-of-band edits and from targets
// deleted without a follow-up save.
type ReferenceAudit struct {
	store  store.Store
	engine *links.Engine
	cron   string
}

func NewReferenceAudit(schedule string, st store.Store, engine *links.Engine) *ReferenceAudit {
	return &ReferenceAudit{
		store:  st,
		engine: engine,
		cron:   schedule,
	}
}

func (r *ReferenceAudit) Schedule() string {
	return r.cron
}

func (r *ReferenceAudit) Run() {
	ctx := context.Background()
	synced, failed := 0, 0

	for _, src := range r.collect(ctx) {
		err := r.store.Transaction(ctx, func(tx store.Store) error {
			return r.engine.SyncReferences(ctx, store.NewReferenceEdges(tx), src.ref, src.text)
		})
		if err != nil {
			logrus.Errorf("reference audit: error syncing %s:%d: %v", src.ref.Kind, src.ref.ID, err)
			failed++
			continue
		}
		synced++
	}

	logrus.Infof("reference audit: synced %d sources, %d failures", synced, failed)
}

type auditSource struct {
	ref  links.Ref
	text string
}

func (r *ReferenceAudit) collect(ctx context.Context) []auditSource {
	var out []auditSource

	if pages, err := r.store.ListWikiPages(ctx); err != nil {
		logrus.Errorf("reference audit: error listing wiki pages: %v", err)
	} else {
		for _, page := range pages {
			out = append(out, auditSource{ref: links.Ref{Kind: links.KindWiki, ID: page.ID}, text: page.Content})
		}
	}

	if problems, err := r.store.ListProblems(ctx); err != nil {
		logrus.Errorf("reference audit: error listing problems: %v", err)
	} else {
		for _, problem := range problems {
			out = append(out, auditSource{ref: links.Ref{Kind: links.KindProblem, ID: problem.ID}, text: problem.Description})
		}
	}

	if entries, err := r.store.ListLogEntries(ctx); err != nil {
		logrus.Errorf("reference audit: error listing log entries: %v", err)
	} else {
		for _, entry := range entries {
			out = append(out, auditSource{ref: links.Ref{Kind: links.KindLog, ID: entry.ID}, text: entry.Text})
		}
	}

	if reqs, err := r.store.ListPartRequests(ctx); err != nil {
		logrus.Errorf("reference audit: error listing part requests: %v", err)
	} else {
		for _, req := range reqs {
			out = append(out, auditSource{ref: links.Ref{Kind: links.KindPartRequest, ID: req.ID}, text: req.Text})
		}
	}

	if updates, err := r.store.ListAllPartRequestUpdates(ctx); err != nil {
		logrus.Errorf("reference audit: error listing part request updates: %v", err)
	} else {
		for _, update := range updates {
			out = append(out, auditSource{ref: links.Ref{Kind: links.KindPartRequestUpdate, ID: update.ID}, text: update.Text})
		}
	}

	return out
}
