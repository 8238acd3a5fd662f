// Package lock serializa as escritas de cada tipo de registro na planilha.
//
// A planilha não oferece transações: ler a aba, achar o índice da linha e gravar nesse
// índice só é seguro se nenhuma outra escrita do mesmo tipo acontecer no meio.
package lock

import (
	"context"
	"sync"
)

// LocalLocker um mutex por chave, válido dentro de um único processo.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewLocalLocker constrói o locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]chan struct{})}
}

// Lock bloqueia até obter a chave ou até ctx terminar.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	ch := l.slot(key)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[key] = ch
	}
	return ch
}
