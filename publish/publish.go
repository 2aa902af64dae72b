// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - hand winning solutions to the transaction layer
//
// the transaction builder and RPC submitter run as a separate
// process; this package only pushes the solution and its fee
// decision over a zmq socket
package publish

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/supersanta183/orev2-cli/background"
	"github.com/supersanta183/orev2-cli/fault"
	"github.com/supersanta183/orev2-cli/mine"
	"github.com/supersanta183/orev2-cli/pay"
)

// solutions waiting for the socket; one per minute is the normal
// rate so a small queue is plenty
const submitQueueSize = 16

// Configuration - publishing section of the configuration file
type Configuration struct {
	Submit []string `gluamapper:"submit" json:"submit"`
}

// Item - wire form of one winning solution and its fee decision
type Item struct {
	Challenge     string `json:"challenge"`
	Nonce         uint64 `json:"nonce"`
	Digest        string `json:"digest"`
	Hash          string `json:"hash"`
	Difficulty    uint32 `json:"difficulty"`
	Tier          string `json:"tier"`
	PriorityFee   uint64 `json:"priority_fee"`
	ComputeBudget uint64 `json:"compute_budget"`
	AttemptReset  bool   `json:"attempt_reset"`
	Bus           string `json:"bus"`
}

// NewItem - flatten a solution and decision into wire form
func NewItem(solution mine.Solution, decision pay.Decision) Item {
	return Item{
		Challenge:     solution.Challenge.String(),
		Nonce:         solution.Nonce,
		Digest:        solution.Digest.String(),
		Hash:          solution.Hash.String(),
		Difficulty:    solution.Difficulty,
		Tier:          decision.Tier.String(),
		PriorityFee:   decision.PriorityFee,
		ComputeBudget: decision.ComputeBudget,
		AttemptReset:  decision.AttemptReset,
		Bus:           decision.Bus.String(),
	}
}

// the background process draining the queue into the socket
type submitter struct {
	log    *logger.L
	socket *zmq.Socket
	queue  chan Item
}

// set up the socket and queue
func (sub *submitter) initialise(configuration *Configuration) error {

	log := logger.New("submitter")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	sub.log = log

	log.Info("initialising…")

	if 0 == len(configuration.Submit) {
		return fault.ErrNoSubmitEndpoints
	}

	socket, err := zmq.NewSocket(zmq.PUSH)
	if nil != err {
		return err
	}
	sub.socket = socket

	for i, address := range configuration.Submit {
		err = socket.Connect(address)
		if nil != err {
			log.Errorf("submit[%d]=%q  error: %s", i, address, err)
			socket.Close()
			return err
		}
		log.Infof("submit to: %q", address)
	}

	sub.queue = make(chan Item, submitQueueSize)
	return nil
}

// Run - drain queued items until shutdown
func (sub *submitter) Run(args interface{}, shutdown <-chan struct{}) {

	log := sub.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-sub.queue:
			sub.process(item)
		}
	}
	sub.socket.Close()
}

// push one item over the socket
func (sub *submitter) process(item Item) {

	data, err := json.Marshal(item)
	if nil != err {
		sub.log.Errorf("marshal error: %s", err)
		return
	}

	_, err = sub.socket.SendBytes(data, 0)
	if nil != err {
		sub.log.Errorf("send error: %s", err)
		return
	}

	sub.log.Infof("submitted: %s  difficulty: %d", item.Hash, item.Difficulty)
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	// logger
	log *logger.L

	// for submission
	sub submitter

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the submission publisher
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if err := globalData.sub.initialise(configuration); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.sub,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
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

// Submit - queue one winning solution for the transaction layer
//
// never blocks the mining loop: a full queue is an error the caller
// just logs, the next round will produce a fresh solution anyway
func Submit(solution mine.Solution, decision pay.Decision) error {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	select {
	case globalData.sub.queue <- NewItem(solution, decision):
		return nil
	default:
		return fault.ErrSubmitQueueOverflow
	}
}
