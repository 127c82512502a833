// Package ops implements the load-then-sync interaction on top of a Syncer.
package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jacksmith/addonsync/internal/model"
	"github.com/sirupsen/logrus"
)

// Controller owns the state of one interactive session: the credential,
// the loaded addon collection, and the latest status message. Nothing it
// holds outlives the process.
//
// At most one Sync runs at a time. Other methods may be called while a
// sync is in flight.
type Controller struct {
	syncer Syncer
	log    logrus.FieldLogger

	mu         sync.Mutex
	credential string
	addons     model.Collection
	fileName   string
	message    *model.StatusMessage
	loading    bool
}

// NewController returns an idle controller with no file and no credential.
func NewController(syncer Syncer, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{syncer: syncer, log: log}
}

// SetCredential replaces the auth key used by the next sync.
func (c *Controller) SetCredential(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = key
}

// Message returns the most recent status message, or nil.
func (c *Controller) Message() *model.StatusMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.message == nil {
		return nil
	}
	m := *c.message
	return &m
}

// Addons returns the currently loaded collection.
func (c *Controller) Addons() model.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addons
}

// Snapshot returns a copy of the current state for rendering.
func (c *Controller) Snapshot() model.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	count, known := c.addons.Count()
	s := model.State{
		HasCredential: c.credential != "",
		FileName:      c.fileName,
		Count:         count,
		CountKnown:    known,
		Loading:       c.loading,
		Phase:         model.PhaseOf(c.loading, c.message),
	}
	if c.message != nil {
		m := *c.message
		s.Message = &m
	}
	return s
}

// LoadFile replaces the loaded collection with the one found at
// addons.addons in f. A file not declared as JSON is rejected without
// touching the loaded collection. A file that cannot be parsed, or lacks
// the path, clears the loaded collection.
func (c *Controller) LoadFile(f *model.UploadedFile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !f.IsJSON() {
		return c.fail(newError(KindInvalidFileType, msgInvalidFileType, nil))
	}

	c.fileName = f.Name

	addons, err := model.ExtractAddons(f.Content)
	if err != nil {
		c.addons = model.Collection{}
		c.log.WithError(err).WithField("file", f.Name).Debug("rejected addon export")
		return c.fail(newError(KindInvalidFileFormat, msgInvalidFileFormat, err))
	}

	c.addons = addons
	c.message = model.Success(fmt.Sprintf("JSON file loaded successfully (%s items)", countLabel(addons)))
	c.log.WithFields(logrus.Fields{
		"file":  f.Name,
		"count": countLabel(addons),
	}).Info("loaded addon export")
	return nil
}

// ReplaceAddons swaps the loaded collection for raw, which must be a JSON
// array. It is used after the user edits the collection by hand.
func (c *Controller) ReplaceAddons(raw json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	addons, err := model.NewCollection(raw)
	if err == nil && !addons.IsList {
		err = fmt.Errorf("addon list must be a JSON array")
	}
	if err != nil {
		c.addons = model.Collection{}
		return c.fail(newError(KindInvalidFileFormat, msgInvalidFileFormat, err))
	}

	c.addons = addons
	c.message = model.Success(fmt.Sprintf("Addon list updated (%s items)", countLabel(addons)))
	return nil
}

// Preflight checks the local sync preconditions in order: a credential,
// then a non-empty addon list. It does not contact the remote service.
func (c *Controller) Preflight() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preflight()
}

func (c *Controller) preflight() error {
	if c.credential == "" {
		return c.fail(newError(KindMissingCredential, msgMissingCredential, nil))
	}
	if c.addons.Empty() {
		return c.fail(newError(KindMissingAddonData, msgMissingAddonData, nil))
	}
	return nil
}

// Sync pushes the loaded collection to the remote service with a single
// attempt. The outcome is both returned and recorded as the status message.
// The loading flag is cleared on every return path.
func (c *Controller) Sync(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return newError(KindSyncInProgress, msgSyncInProgress, nil)
	}
	if err := c.preflight(); err != nil {
		c.mu.Unlock()
		return err
	}
	c.loading = true
	c.message = nil
	authKey := c.credential
	addons := c.addons
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	log := c.log.WithFields(logrus.Fields{
		"attempt": uuid.NewString(),
		"count":   len(addons.Items),
	})
	log.Info("syncing addons")

	resp, err := c.syncer.SetAddonCollection(ctx, authKey, addons.Raw)
	if err != nil {
		log.WithError(err).Error("sync request failed")
		return c.record(transportError(err))
	}

	if resp != nil {
		log = log.WithField("status", resp.StatusCode)
	}
	if resp == nil || resp.Result == nil {
		log.Error("sync failed without a result")
		return c.record(newError(KindUnknownSyncFailure, msgUnknownSyncFailure, nil))
	}

	if !resp.Result.Success {
		desc := resp.Result.ErrorText()
		log.WithField("remote_error", desc).Error("sync rejected")
		return c.record(remoteRejected(desc))
	}

	log.Info("sync complete")
	c.mu.Lock()
	c.message = model.Success(msgSyncComplete)
	c.mu.Unlock()
	return nil
}

// fail records err as the status message. Callers hold c.mu.
func (c *Controller) fail(err *Error) error {
	c.message = model.Failure(err.Message)
	return err
}

// record is fail for callers not holding c.mu.
func (c *Controller) record(err *Error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fail(err)
}

func countLabel(addons model.Collection) string {
	if n, ok := addons.Count(); ok {
		return fmt.Sprint(n)
	}
	return "unknown"
}
