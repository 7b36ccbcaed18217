package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-billing/internal/config"
	"github.com/spec-kit/ticket-billing/internal/domain"
	"github.com/spec-kit/ticket-billing/internal/repository"
)

// BackupWorker periodically exports the full data set to timestamped JSON
// files, pruning old exports beyond the retention count.
type BackupWorker struct {
	companies repository.CompanyRepository
	tickets   repository.TicketRepository
	orders    repository.OrderRepository
	cfg       config.BackupConfig
	logger    *zap.Logger
}

// NewBackupWorker constructs the worker.
func NewBackupWorker(companies repository.CompanyRepository, tickets repository.TicketRepository, orders repository.OrderRepository, cfg config.BackupConfig, logger *zap.Logger) *BackupWorker {
	return &BackupWorker{
		companies: companies,
		tickets:   tickets,
		orders:    orders,
		cfg:       cfg,
		logger:    logger,
	}
}

type backupCompany struct {
	Company domain.TicketCompany `json:"company"`
	Tickets []domain.Ticket      `json:"tickets"`
	Orders  []domain.TicketOrder `json:"orders"`
}

type backupFile struct {
	ExportedAt time.Time       `json:"exported_at"`
	Companies  []backupCompany `json:"companies"`
}

// Run blocks until the context is cancelled, taking a backup immediately and
// then on every interval tick.
func (w *BackupWorker) Run(ctx context.Context) {
	if !w.cfg.Enabled {
		return
	}

	ticker := time.NewTicker(w.cfg.Interval())
	defer ticker.Stop()

	w.backupOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.backupOnce(ctx)
		}
	}
}

func (w *BackupWorker) backupOnce(ctx context.Context) {
	if err := w.export(ctx); err != nil {
		w.logger.Error("backup failed", zap.Error(err))
		return
	}
	if err := w.prune(); err != nil {
		w.logger.Warn("backup pruning failed", zap.Error(err))
	}
}

func (w *BackupWorker) export(ctx context.Context) error {
	companies, err := w.companies.List(ctx)
	if err != nil {
		return fmt.Errorf("list companies: %w", err)
	}

	out := backupFile{ExportedAt: time.Now().UTC()}
	for _, company := range companies {
		tickets, err := w.tickets.ListByCompany(ctx, company.ID)
		if err != nil {
			return fmt.Errorf("list tickets for %s: %w", company.ID, err)
		}
		orders, err := w.orders.ListByCompany(ctx, company.ID)
		if err != nil {
			return fmt.Errorf("list orders for %s: %w", company.ID, err)
		}
		out.Companies = append(out.Companies, backupCompany{
			Company: company,
			Tickets: tickets,
			Orders:  orders,
		})
	}

	if err := os.MkdirAll(w.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("backup-%s.json", out.ExportedAt.Format("20060102-150405"))
	path := filepath.Join(w.cfg.Dir, name)
	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	w.logger.Info("backup written", zap.String("file", name), zap.Int("companies", len(companies)))
	return nil
}

func (w *BackupWorker) prune() error {
	if w.cfg.Keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(w.cfg.Dir)
	if err != nil {
		return err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "backup-") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	for len(names) > w.cfg.Keep {
		if err := os.Remove(filepath.Join(w.cfg.Dir, names[0])); err != nil {
			return err
		}
		names = names[1:]
	}
	return nil
}
