package swapper

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"

	"ekuboswap/internal/apperrors"
	"ekuboswap/internal/ekubo"
	"ekuboswap/internal/logger"
)

type subscription struct {
	sub    ethereum.Subscription
	cancel context.CancelFunc
	done   chan struct{}
}

// Subscribe implements Swapper. One subscription per event name; the handler
// receives decoded, strongly-typed payloads on a dedicated goroutine.
func (s *Service) Subscribe(eventName string, handler EventHandler) error {
	if eventName != ekubo.EventSwapped {
		return errors.Errorf("unknown event %q", eventName)
	}
	if handler == nil {
		return errors.New("handler is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[eventName]; ok {
		return errors.Errorf("already subscribed to %q", eventName)
	}

	ctx, cancel := context.WithCancel(context.Background())
	logs := make(chan types.Log, 16)
	sub, err := s.provider.SubscribeLogs(ctx, ethereum.FilterQuery{
		Addresses: []common.Address{s.contract},
		Topics:    [][]common.Hash{{ekubo.SwappedTopic()}},
	}, logs)
	if err != nil {
		cancel()
		return errors.Wrapf(apperrors.ErrNetworkFailure, "provider.SubscribeLogs: %v", err)
	}

	entry := &subscription{sub: sub, cancel: cancel, done: make(chan struct{})}
	s.subs[eventName] = entry

	go s.dispatch(eventName, entry, logs, handler)
	return nil
}

// Unsubscribe implements Swapper. Idempotent: unknown or already removed
// names are not an error.
func (s *Service) Unsubscribe(eventName string) error {
	s.mu.Lock()
	entry, ok := s.subs[eventName]
	if ok {
		delete(s.subs, eventName)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}

	entry.sub.Unsubscribe()
	entry.cancel()
	<-entry.done
	return nil
}

func (s *Service) dispatch(eventName string, entry *subscription, logs <-chan types.Log, handler EventHandler) {
	defer close(entry.done)

	for {
		select {
		case lg := <-logs:
			event, err := ekubo.DecodeSwappedLog(lg)
			if err != nil {
				logger.Warnf("[swapper] dropping undecodable %s log, tx: %s, %v", eventName, lg.TxHash, err)
				continue
			}
			handler(event)
		case err := <-entry.sub.Err():
			if err != nil {
				logger.Errorf("[swapper] %s subscription failed: %v", eventName, err)
			}
			s.mu.Lock()
			if s.subs[eventName] == entry {
				delete(s.subs, eventName)
			}
			s.mu.Unlock()
			return
		}
	}
}
