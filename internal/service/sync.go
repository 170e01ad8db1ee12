package service

import (
	"context"
	"time"

	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/sirupsen/logrus"
)

// syncReferences reconciles the edge table for one source record in its
// own transaction. It runs after the content save has committed, so a
// sync failure never rolls the save back.
func syncReferences(ctx context.Context, st store.Store, engine *links.Engine, source links.Ref, storageText string) error {
	return st.Transaction(ctx, func(tx store.Store) error {
		return engine.SyncReferences(ctx, store.NewReferenceEdges(tx), source, storageText)
	})
}

// publishChange emits a record change event. Delivery is best effort.
func publishChange(ctx context.Context, pub events.Publisher, source links.Ref, action string) {
	if pub == nil {
		return
	}
	err := pub.PublishRecordChange(ctx, &events.RecordEvent{
		Kind:   string(source.Kind),
		ID:     source.ID,
		Action: action,
		At:     time.Now().UTC(),
	})
	if err != nil {
		logrus.Errorf("error publishing %s event for %s:%d: %v", action, source.Kind, source.ID, err)
	}
}
