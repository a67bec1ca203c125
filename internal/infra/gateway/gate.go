package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"parkgate/internal/pkg/config"
	"parkgate/internal/pkg/errs"
	"parkgate/internal/usecase"
)

// Timestamp layout the gate-access system expects in reservation records.
const gateTimeLayout = "20060102150405"

const dialTimeout = 10 * time.Second

// FTPGateUploader transmits fixed-width reservation records to the legacy
// gate server. The connection lives for a single upload; the server is an
// appliance that drops idle control connections, so there is no pooling.
type FTPGateUploader struct {
	cfg config.GateConfig
}

func NewFTPGateUploader(cfg config.Config) *FTPGateUploader {
	return &FTPGateUploader{cfg: cfg.Gate}
}

func (g *FTPGateUploader) Upload(ctx context.Context, rec usecase.GateRecord) error {
	if !g.cfg.Configured() {
		return errs.New("gate server not configured")
	}

	conn, err := ftp.Dial(g.cfg.DialAddr(),
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(dialTimeout),
	)
	if err != nil {
		return errs.Wrap(err, "failed to connect to gate server")
	}
	defer func() {
		if quitErr := conn.Quit(); quitErr != nil {
			slog.Warn("failed to close gate server connection", "error", quitErr)
		}
	}()

	if err := conn.Login(g.cfg.User, g.cfg.Password); err != nil {
		return errs.Wrap(err, "gate server login failed")
	}

	remote := path.Join(g.cfg.RemoteDir, rec.PassNumber+".txt")
	if err := conn.Stor(remote, strings.NewReader(FormatGateRecord(rec))); err != nil {
		return errs.Wrapf(err, "reservation record transfer failed for pass %s", rec.PassNumber)
	}
	return nil
}

// FormatGateRecord lays out the reservation as one fixed-width line:
// pass number (12), start (14), end (14), last name (20), first name (20).
// Names longer than their field are truncated; the gate system only matches
// on the pass number.
func FormatGateRecord(rec usecase.GateRecord) string {
	return fmt.Sprintf("%-12s%-14s%-14s%-20.20s%-20.20s\r\n",
		rec.PassNumber,
		rec.Start.Format(gateTimeLayout),
		rec.End.Format(gateTimeLayout),
		rec.LastName,
		rec.FirstName,
	)
}
