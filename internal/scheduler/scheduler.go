package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"ddoslab/config"
	"ddoslab/internal/service"
)

// Scheduler 定时任务调度器
type Scheduler struct {
	cron        *cron.Cron
	jobMutex    sync.Mutex
	isRunning   bool
	experiments service.ExperimentService
	jobIDs      map[string]cron.EntryID // 存储任务ID，用于更新
}

// NewScheduler 创建调度器
func NewScheduler(experiments service.ExperimentService) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		isRunning:   false,
		experiments: experiments,
		jobIDs:      make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cronJobs []config.CronJob) error {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	// 如果已经在运行，先停止
	if s.isRunning {
		s.cron.Stop()
	}

	// 添加任务
	for _, job := range cronJobs {
		// 检查任务配置是否有效
		if job.Schedule == "" {
			log.Printf("Job %s has invalid schedule, skipping", job.Name)
			continue
		}

		// 创建任务闭包
		jobConfig := job // 创建副本避免闭包问题
		entryID, err := s.cron.AddFunc(jobConfig.Schedule, func() {
			s.executeJob(jobConfig)
		})

		if err != nil {
			log.Printf("Failed to add job %s: %v", job.Name, err)
			continue
		}

		// 存储任务ID
		s.jobIDs[job.Name] = entryID
		log.Printf("Added job %s with schedule %s", job.Name, job.Schedule)
	}

	// 启动cron
	s.cron.Start()
	s.isRunning = true

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		log.Println("Scheduler stopped")
	}
}

// GetStatus 返回所有已注册任务的下次执行时间
func (s *Scheduler) GetStatus() map[string]time.Time {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	status := make(map[string]time.Time, len(s.jobIDs))
	for name, id := range s.jobIDs {
		status[name] = s.cron.Entry(id).Next
	}
	return status
}

// executeJob 执行定时任务
func (s *Scheduler) executeJob(job config.CronJob) {
	log.Printf("Executing job: %s", job.Name)

	// 添加panic恢复机制
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Job %s panic: %v", job.Name, r)
		}
	}()

	if job.RecountStats {
		s.recountOpenExperiments(job)
	}

	if job.FinishStale {
		staleAfter := time.Duration(job.StaleAfterHours) * time.Hour
		finished, err := s.experiments.FinishStale(staleAfter)
		if err != nil {
			log.Printf("Job %s: finish stale experiments failed: %v", job.Name, err)
			return
		}
		if finished > 0 {
			log.Printf("Job %s: finished %d stale experiments", job.Name, finished)
		}
	}
}

// recountOpenExperiments 重算所有未结束实验的检出统计
func (s *Scheduler) recountOpenExperiments(job config.CronJob) {
	experiments, err := s.experiments.List()
	if err != nil {
		log.Printf("Job %s: list experiments failed: %v", job.Name, err)
		return
	}

	for _, experiment := range experiments {
		if experiment.Finished() {
			continue
		}
		if _, err := s.experiments.RecountStats(experiment.ExperimentID); err != nil {
			log.Printf("Job %s: recount experiment %d failed: %v", job.Name, experiment.ExperimentID, err)
		}
	}
}
