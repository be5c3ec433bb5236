package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/services"
	"github.com/dmitrijs2005/ipfsuploader/internal/filex"
	"github.com/dmitrijs2005/ipfsuploader/internal/logging"
)

const filePlaceholder = "./test.txt"

type state int

const (
	stateSelectFile state = iota
	stateUpload
	stateDecideNaming
	stateListRecords
	stateEmptyCreatePublish
	stateSelectExisting
	statePublish
	stateDone
	stateCancelled
)

var stateNames = map[state]string{
	stateSelectFile:         "SELECT_FILE",
	stateUpload:             "UPLOAD",
	stateDecideNaming:       "DECIDE_NAMING",
	stateListRecords:        "LIST_RECORDS",
	stateEmptyCreatePublish: "EMPTY_CREATE_PUBLISH",
	stateSelectExisting:     "SELECT_EXISTING",
	statePublish:            "PUBLISH",
	stateDone:               "DONE",
	stateCancelled:          "CANCELLED",
}

func (s state) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type onCancel int

const (
	cancelSilent onCancel = iota
	cancelBanner
	cancelContentSummary
)

// cancelPolicy lists what each prompting state prints when the operator
// cancels. Every cancellation exits with status 0.
var cancelPolicy = map[state]onCancel{
	stateSelectFile:         cancelSilent,
	stateDecideNaming:       cancelBanner,
	stateEmptyCreatePublish: cancelContentSummary,
	stateSelectExisting:     cancelBanner,
}

const cancelMessage = "You canceled the process..."

type workflow struct {
	prompter Prompter
	uploads  services.UploadService
	naming   services.NamingService
	status   *statusLine
	out      io.Writer
	gateway  string
	logger   logging.Logger

	path      string
	upload    *models.UploadResult
	records   []models.NamingRecord
	record    *models.NamingRecord
	published *models.PublishResult

	trace []state
}

// run drives the state machine to a terminal state. It returns nil when the
// workflow finished, ErrCancelled when the operator aborted, or the first
// unhandled error.
func (w *workflow) run(ctx context.Context) error {
	// Prompts observe ctx; remote calls, once issued, run to completion.
	netCtx := context.WithoutCancel(ctx)

	st := stateSelectFile
	for {
		w.trace = append(w.trace, st)
		w.logger.Debug(ctx, "workflow state", "state", st.String())

		var (
			next state
			err  error
		)
		switch st {
		case stateSelectFile:
			next, err = w.selectFile(ctx)
		case stateUpload:
			next, err = w.uploadFile(netCtx)
		case stateDecideNaming:
			next, err = w.decideNaming(ctx)
		case stateListRecords:
			next, err = w.listRecords(netCtx)
		case stateEmptyCreatePublish:
			next, err = w.createAndPublish(ctx, netCtx)
		case stateSelectExisting:
			next, err = w.selectExisting(ctx)
		case statePublish:
			next, err = w.publish(netCtx)
		case stateDone:
			w.finish()
			return nil
		case stateCancelled:
			return ErrCancelled
		default:
			return fmt.Errorf("workflow: unknown state %s", st)
		}

		if errors.Is(err, ErrCancelled) {
			w.cancel(st)
			next = stateCancelled
		} else if err != nil {
			return err
		}
		st = next
	}
}

func (w *workflow) cancel(from state) {
	switch cancelPolicy[from] {
	case cancelBanner:
		fmt.Fprintln(w.out, red(cancelMessage))
	case cancelContentSummary:
		fmt.Fprint(w.out, Summary(w.gateway, w.upload, nil))
	}
}

func validatePath(path string) error {
	if !filex.Exists(path) {
		return fmt.Errorf("Whoops! %s doesn't exist!", path)
	}
	return nil
}

func (w *workflow) selectFile(ctx context.Context) (state, error) {
	path, err := w.prompter.Text(ctx, "What file do you want to upload?", filePlaceholder, validatePath)
	if err != nil {
		return stateCancelled, err
	}
	w.path = path
	return stateUpload, nil
}

func (w *workflow) uploadFile(ctx context.Context) (state, error) {
	file, err := w.uploads.Load(w.path)
	if err != nil {
		return stateCancelled, err
	}

	w.status.Start(fmt.Sprintf("Uploading %s (%s) to IPFS...", w.path, humanize.Bytes(uint64(len(file.Content)))))
	res, err := w.uploads.Upload(ctx, file)
	if err != nil {
		w.status.Fail("Upload failed.")
		return stateCancelled, err
	}
	w.status.Stop(fmt.Sprintf("File uploaded! The CID is => %s", blue(res.CID)))

	w.upload = res
	return stateDecideNaming, nil
}

func (w *workflow) decideNaming(ctx context.Context) (state, error) {
	ok, err := w.prompter.Confirm(ctx, "Do you want to update an IPNS record with this CID?")
	if err != nil {
		return stateCancelled, err
	}
	if !ok {
		return stateDone, nil
	}
	return stateListRecords, nil
}

func (w *workflow) listRecords(ctx context.Context) (state, error) {
	w.status.Start("Getting available IPNS records...")
	records, err := w.naming.List(ctx)
	if err != nil {
		w.status.Fail("Could not list IPNS records.")
		return stateCancelled, err
	}
	w.records = records

	if len(records) == 0 {
		w.status.Stop("No IPNS records found.")
		return stateEmptyCreatePublish, nil
	}
	w.status.Stop(fmt.Sprintf("Found %d IPNS record(s).", len(records)))
	return stateSelectExisting, nil
}

// createAndPublish handles an account without records: it creates one and
// publishes to it directly instead of handing it to statePublish.
func (w *workflow) createAndPublish(ctx, netCtx context.Context) (state, error) {
	ok, err := w.prompter.Confirm(ctx, "Do you want to create an IPNS record and publish it with the IPFS CID?")
	if err != nil {
		return stateCancelled, err
	}
	if !ok {
		return stateDone, nil
	}

	w.status.Start("Creating IPNS record...")
	rec, err := w.naming.Create(netCtx)
	if err != nil {
		w.status.Fail("Could not create IPNS record.")
		return stateCancelled, err
	}
	w.status.Stop(fmt.Sprintf("IPNS record created! The ID is => %s", blue(rec.ID)))
	w.record = rec

	if err := w.publishRecord(netCtx); err != nil {
		return stateCancelled, err
	}
	return stateDone, nil
}

func (w *workflow) selectExisting(ctx context.Context) (state, error) {
	labels := make([]string, len(w.records))
	for i, r := range w.records {
		labels[i] = r.ID
	}

	idx, err := w.prompter.Select(ctx, "Select the IPNS record you want to update", labels)
	if err != nil {
		return stateCancelled, err
	}
	if idx < 0 || idx >= len(w.records) {
		return stateCancelled, fmt.Errorf("select record: index %d out of range", idx)
	}

	rec := w.records[idx]
	w.record = &rec
	return statePublish, nil
}

func (w *workflow) publish(ctx context.Context) (state, error) {
	if err := w.publishRecord(ctx); err != nil {
		return stateCancelled, err
	}
	return stateDone, nil
}

func (w *workflow) publishRecord(ctx context.Context) error {
	w.status.Start("Updating IPNS record...")
	res, err := w.naming.Publish(ctx, w.upload, w.record)
	if err != nil {
		w.status.Fail("Could not update IPNS record.")
		return err
	}
	w.status.Stop(fmt.Sprintf("IPNS record updated! The new CID is => %s", blue(res.Hash)))
	w.published = res
	return nil
}

func (w *workflow) finish() {
	fmt.Fprint(w.out, Summary(w.gateway, w.upload, w.record))
}
