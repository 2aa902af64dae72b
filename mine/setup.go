// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/supersanta183/orev2-cli/background"
	"github.com/supersanta183/orev2-cli/fault"
	"github.com/supersanta183/orev2-cli/pay"
	"github.com/supersanta183/orev2-cli/solver"
)

// delay before retrying after a failed parameter fetch
const fetchRetryDelay = 5 * time.Second

// Configuration - mining section of the configuration file
type Configuration struct {
	Workers    int             `gluamapper:"workers" json:"workers"`
	BufferTime int             `gluamapper:"buffer_time" json:"buffer_time"`
	Fees       pay.FeeSchedule `gluamapper:"fees" json:"fees"`
}

// Submitter - external collaborator that turns a solution and a fee
// decision into an actual transaction
type Submitter interface {
	Submit(solution Solution, decision pay.Decision) error
}

// SubmitFunc - adapter to allow plain functions as submitters
type SubmitFunc func(Solution, pay.Decision) error

// Submit - call the wrapped function
func (f SubmitFunc) Submit(solution Solution, decision pay.Decision) error {
	return f(solution, decision)
}

// the outer mining loop run as a background process
type mineLoop struct {
	log         *logger.L
	coordinator *Coordinator
	source      ParameterSource
	submitter   Submitter
	rng         *rand.Rand
	schedule    pay.FeeSchedule
	workers     uint
	buffer      time.Duration
}

// globals for the background process
type minerData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// the loop state
	loop mineLoop

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData minerData

// Initialise - start the background mining loop
func Initialise(configuration *Configuration, source ParameterSource, slv solver.Solver, submitter Submitter) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == source {
		return fault.ErrParameterSourceRequired
	}

	globalData.log = logger.New("mine")
	globalData.log.Info("starting…")

	schedule := configuration.Fees
	if (pay.FeeSchedule{}) == schedule {
		schedule = pay.DefaultFeeSchedule
	}

	globalData.loop = mineLoop{
		log:         globalData.log,
		coordinator: NewCoordinator(slv),
		source:      source,
		submitter:   submitter,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		schedule:    schedule,
		workers:     uint(configuration.Workers),
		buffer:      time.Duration(configuration.BufferTime) * time.Second,
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.loop,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop the background mining loop
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Run - fetch parameters, search, decide fees, hand off; repeat
func (m *mineLoop) Run(args interface{}, shutdown <-chan struct{}) {

	log := m.log
	log.Info("mining loop starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}

		m.round()
	}

	log.Info("mining loop stopped")
}

// one fetch-search-submit cycle
func (m *mineLoop) round() {

	log := m.log

	state, err := m.source.FetchRoundState()
	if nil != err {
		log.Errorf("fetch round state error: %s", err)
		time.Sleep(fetchRetryDelay)
		return
	}

	log.Infof("stake multiplier: %.2fx", pay.Multiplier(state.Balance, state.TopBalance))

	params := RoundParameters{
		Challenge:     state.Challenge,
		MinDifficulty: state.MinDifficulty,
		Cutoff:        Cutoff(state.LastHashAt, state.CurrentTime, m.buffer),
		Workers:       m.workers,
	}

	solution, err := m.coordinator.RunRound(params)
	if nil != err {
		// floor unmet: the nonce space for this challenge is spent,
		// retry with the fresh parameters of the next round
		log.Warnf("round error: %s", err)
		return
	}

	decision := pay.Decide(
		solution.Difficulty,
		pay.ResetEligible(state.LastResetAt, state.CurrentTime),
		m.rng,
		m.schedule,
	)

	log.Infof("solution: %s  tier: %s  fee: %d  budget: %d", solution, decision.Tier, decision.PriorityFee, decision.ComputeBudget)

	if err := m.submitter.Submit(solution, decision); nil != err {
		log.Errorf("submit error: %s", err)
	}
}
