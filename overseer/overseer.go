// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package overseer implements the subsystem message bus the collator
// registers with at startup.
package overseer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/ChainSafe/log15"
)

var logger = log.New("pkg", "overseer")

// ErrSubsystemNotRegistered is returned when a message is sent to a
// subsystem that was never registered.
var ErrSubsystemNotRegistered = errors.New("subsystem is not registered")

// ErrSubsystemRegistered is returned when two subsystems register under the
// same name.
var ErrSubsystemRegistered = errors.New("subsystem is already registered")

const stopTimeout = 5 * time.Second

// Subsystem is a long-running component driven by messages from the
// overseer.
type Subsystem interface {
	Name() SubsystemName
	// Run processes messages until the context is cancelled or the message
	// channel is closed.
	Run(ctx context.Context, messages <-chan interface{}) error
}

// Overseer routes messages between subsystems. Subsystems must be registered
// before Start is called.
type Overseer struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.RWMutex
	started    bool
	subsystems map[SubsystemName]Subsystem
	channels   map[SubsystemName]chan interface{}
}

// NewOverseer creates an overseer with no subsystems registered.
func NewOverseer() *Overseer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Overseer{
		ctx:        ctx,
		cancel:     cancel,
		subsystems: make(map[SubsystemName]Subsystem),
		channels:   make(map[SubsystemName]chan interface{}),
	}
}

// RegisterSubsystem registers a subsystem with the overseer. Subsystems
// registered after Start are run immediately.
func (o *Overseer) RegisterSubsystem(sub Subsystem) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	name := sub.Name()
	if _, has := o.subsystems[name]; has {
		return fmt.Errorf("%w: %s", ErrSubsystemRegistered, name)
	}

	o.subsystems[name] = sub
	o.channels[name] = make(chan interface{})

	if o.started {
		o.runSubsystem(name, sub, o.channels[name])
	}
	return nil
}

// Start runs all registered subsystems.
func (o *Overseer) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.started {
		return errors.New("overseer already started")
	}
	o.started = true

	for name, sub := range o.subsystems {
		o.runSubsystem(name, sub, o.channels[name])
	}

	return nil
}

func (o *Overseer) runSubsystem(name SubsystemName, sub Subsystem, messages chan interface{}) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		if err := sub.Run(o.ctx, messages); err != nil {
			logger.Error("subsystem failed", "subsystem", name, "error", err)
			return
		}
		logger.Info("subsystem stopped", "subsystem", name)
	}()
}

// Stop cancels all subsystems and waits for them to finish.
func (o *Overseer) Stop() error {
	o.cancel()

	if waitTimeout(&o.wg, stopTimeout) {
		return errors.New("subsystems did not stop within timeout")
	}

	return nil
}

// SendMessage delivers the message to the subsystem responsible for its
// type, blocking until the subsystem accepts it or the context is done.
func (o *Overseer) SendMessage(ctx context.Context, msg interface{}) error {
	var target SubsystemName
	switch msg.(type) {
	case CollationGenerationMessage:
		target = CollationGeneration
	case CollateOn, CollationSeconded:
		target = CollatorProtocol
	default:
		return fmt.Errorf("unsupported message type %T", msg)
	}

	o.mu.RLock()
	ch, has := o.channels[target]
	o.mu.RUnlock()
	if !has {
		return fmt.Errorf("%w: %s", ErrSubsystemNotRegistered, target)
	}

	select {
	case ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-o.ctx.Done():
		return errors.New("overseer is stopped")
	}
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) (timedOut bool) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()

	timer := time.NewTimer(timeout)
	select {
	case <-done:
		if !timer.Stop() {
			<-timer.C
		}
		return false
	case <-timer.C:
		return true
	}
}
