package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler 按 cron 表达式周期执行日报任务
type Scheduler struct {
	cron *cron.Cron
	job  func()
}

func New(spec string, job func()) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, job: job}

	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	log.Println("start digest job...")
	s.job()
	log.Println("digest job done")
}
