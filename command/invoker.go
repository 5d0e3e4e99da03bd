package command

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/patternworks/classic-patterns-go/journal"
)

const (
	logMsgCommandExecuted       = "command executed"
	logMsgCommandFailed         = "command execution failed"
	logMsgBuildEntryFailed      = "failed to build journal entry from command"
	logMsgJournalAppendFailed   = "failed to append journal entry"
	logMsgMarshalMetadataFailed = "failed to marshal entry metadata"
	logAttrCommandName          = "command_name"
	logAttrDurationMS           = "duration_ms"
	logAttrError                = "error"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// ErrRecordingCommandFailed is joined onto the cause when journaling an executed command fails.
// The command's effect stands; only the audit record is missing.
var ErrRecordingCommandFailed = errors.New("recording executed command failed")

// Journal defines the interface needed by the Invoker to record executed commands.
type Journal interface {
	Append(ctx context.Context, entries ...journal.Entry) error
}

// EntryMetadata is the journal metadata recorded for each handled command.
type EntryMetadata struct {
	MessageID     string
	CausationID   string
	CorrelationID string
	Outcome       string
}

// Invoker executes commands and decouples the code that triggers a request
// from the command carrying it out.
//
// It optionally logs each execution and records it to a journal, keeping both
// concerns out of the commands themselves. Construct it with NewInvoker.
type Invoker struct {
	logger  Logger
	journal Journal
	clock   func() time.Time
}

// NewInvoker creates an Invoker with optional configuration.
func NewInvoker(options ...Option) (*Invoker, error) {
	inv := &Invoker{
		clock: time.Now,
	}

	for _, option := range options {
		if err := option(inv); err != nil {
			return nil, err
		}
	}

	return inv, nil
}

// Handle executes the command, logs the outcome, and records it to the journal
// if one is configured.
//
// Failed executions are journaled as well, so the journal is a complete audit
// trail. A journaling failure after a successful execution is reported as
// ErrRecordingCommandFailed but does not revert the command's effect.
func (inv *Invoker) Handle(ctx context.Context, cmd Command) error {
	start := inv.clock()
	execErr := cmd.Execute()
	duration := inv.clock().Sub(start)

	inv.logOutcome(cmd, duration, execErr)

	if inv.journal == nil {
		return execErr
	}

	if journalErr := inv.record(ctx, cmd, execErr); journalErr != nil {
		if execErr != nil {
			return errors.Join(execErr, journalErr)
		}

		return journalErr
	}

	return execErr
}

// record builds a journal entry for the handled command and appends it.
func (inv *Invoker) record(ctx context.Context, cmd Command, execErr error) error {
	payloadJSON, payloadErr := payloadFrom(cmd)
	if payloadErr != nil {
		inv.logError(logMsgBuildEntryFailed, cmd, payloadErr)
		return errors.Join(ErrRecordingCommandFailed, payloadErr)
	}

	metadataJSON, metadataErr := jsoniter.ConfigFastest.Marshal(buildEntryMetadata(execErr))
	if metadataErr != nil {
		inv.logError(logMsgMarshalMetadataFailed, cmd, metadataErr)
		return errors.Join(ErrRecordingCommandFailed, metadataErr)
	}

	entry, buildErr := journal.BuildEntry(cmd.Name(), inv.clock(), payloadJSON, metadataJSON)
	if buildErr != nil {
		inv.logError(logMsgBuildEntryFailed, cmd, buildErr)
		return errors.Join(ErrRecordingCommandFailed, buildErr)
	}

	if appendErr := inv.journal.Append(ctx, entry); appendErr != nil {
		inv.logError(logMsgJournalAppendFailed, cmd, appendErr)
		return errors.Join(ErrRecordingCommandFailed, appendErr)
	}

	return nil
}

// buildEntryMetadata creates the metadata for a journal entry with fresh identifiers.
// Message, causation, and correlation IDs are identical for a command that is
// not caused by another message.
func buildEntryMetadata(execErr error) EntryMetadata {
	uid := uuid.New().String()

	outcome := outcomeSuccess
	if execErr != nil {
		outcome = outcomeError
	}

	return EntryMetadata{
		MessageID:     uid,
		CausationID:   uid,
		CorrelationID: uid,
		Outcome:       outcome,
	}
}

// payloadFrom extracts the JSON payload from commands that provide one.
func payloadFrom(cmd Command) ([]byte, error) {
	provider, ok := cmd.(PayloadProvider)
	if !ok {
		return []byte("{}"), nil
	}

	return provider.Payload()
}

func (inv *Invoker) logOutcome(cmd Command, duration time.Duration, execErr error) {
	if inv.logger == nil {
		return
	}

	if execErr != nil {
		inv.logger.Error(logMsgCommandFailed,
			logAttrCommandName, cmd.Name(),
			logAttrDurationMS, durationToMilliseconds(duration),
			logAttrError, execErr.Error())

		return
	}

	inv.logger.Info(logMsgCommandExecuted,
		logAttrCommandName, cmd.Name(),
		logAttrDurationMS, durationToMilliseconds(duration))
}

func (inv *Invoker) logError(msg string, cmd Command, err error) {
	if inv.logger != nil {
		inv.logger.Error(msg, logAttrCommandName, cmd.Name(), logAttrError, err.Error())
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
