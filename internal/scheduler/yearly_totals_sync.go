// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Job é o contrato mínimo usado pela API para disparar e inspecionar um agendamento
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// SnapshotLister é implementado pelos jobs que gravam snapshots consultáveis
type SnapshotLister interface {
	Snapshots() ([]*repository.YearlyTotalSnapshot, error)
}

type YearlyTotalsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type YearlyTotalsSyncService struct {
	scheduler           *gocron.Scheduler
	salesRepo           repository.SalesRepository
	totalsRepo          repository.YearlyTotalRepository
	config              YearlyTotalsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncedYears     int
}

func NewYearlyTotalsSyncService(
	salesRepo repository.SalesRepository,
	totalsRepo repository.YearlyTotalRepository,
	cfg *config.Config,
) *YearlyTotalsSyncService {
	syncConfig := YearlyTotalsSyncConfig{
		CronSchedule: cfg.YearlyTotalsSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.YearlyTotalsSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de totais anuais carregada")

	return &YearlyTotalsSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		salesRepo:  salesRepo,
		totalsRepo: totalsRepo,
		config:     syncConfig,
	}
}

func (s *YearlyTotalsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de totais anuais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de totais anuais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncNow(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização dos totais anuais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de totais anuais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de totais anuais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow recalcula os totais a partir dos registros e grava o snapshot.
// Se já houver uma sincronização em andamento retorna sem fazer nada.
func (s *YearlyTotalsSyncService) SyncNow() error {
	if !s.begin() {
		logrus.Warn("Sincronização de totais anuais já está em execução")
		return nil
	}

	err := s.sync()
	s.finish(err)

	return err
}

func (s *YearlyTotalsSyncService) sync() error {
	logrus.Info("Iniciando sincronização dos totais anuais")

	records, err := s.salesRepo.ListRecords()
	if err != nil {
		return fmt.Errorf("erro ao buscar registros de vendas: %w", err)
	}

	totals := domain.YearlyTotals(records)
	logrus.Debugf("Totais anuais calculados: %s", utils.PrettyJson(totals))
	if err := s.totalsRepo.SaveOrUpdate(totals); err != nil {
		return fmt.Errorf("erro ao salvar totais anuais: %w", err)
	}

	s.syncMutex.Lock()
	s.lastSyncedYears = len(totals)
	s.syncMutex.Unlock()

	logrus.WithField("years", len(totals)).Info("Sincronização dos totais anuais concluída")

	return nil
}

func (s *YearlyTotalsSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *YearlyTotalsSyncService) finish(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}

// TriggerManualSync inicia manualmente uma sincronização em background.
// Retorna false quando já existe uma sincronização em andamento.
func (s *YearlyTotalsSyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Sincronização de totais anuais já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de totais anuais")
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic na sincronização manual: %v", r)
			}
			if err != nil {
				logrus.WithError(err).Error("Erro na sincronização manual dos totais anuais")
			}
			s.finish(err)
		}()

		err = s.sync()
	}()

	return true
}

// Snapshots retorna os totais anuais gravados pela última sincronização
func (s *YearlyTotalsSyncService) Snapshots() ([]*repository.YearlyTotalSnapshot, error) {
	snapshots, err := s.totalsRepo.List()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar totais anuais gravados: %w", err)
	}
	return snapshots, nil
}

// GetStatus retorna o status atual do agendador
func (s *YearlyTotalsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_synced_years":      s.lastSyncedYears,
	}
}
