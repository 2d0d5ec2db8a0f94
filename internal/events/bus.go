// Package events implementa o canal explícito de notificação de mudanças
// entre os gerenciadores do catálogo: quem altera uma entidade publica, quem
// exibe dados derivados dela assina e recarrega.
package events

import (
	"sync"
)

// Entity identifica o tipo de entidade que mudou.
type Entity string

const (
	EntityCategory Entity = "category"
	EntityProduct  Entity = "product"
)

// Handler é chamado de forma síncrona a cada publicação. Deve ser barato;
// trabalho pesado fica a cargo do assinante.
type Handler func(entity Entity)

// Bus é um barramento simples de publicação/assinatura por tipo de entidade.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Entity][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Entity][]Handler),
	}
}

// Subscribe registra um handler para um tipo de entidade.
func (b *Bus) Subscribe(entity Entity, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[entity] = append(b.handlers[entity], handler)
}

// Publish notifica os assinantes do tipo de entidade informado.
func (b *Bus) Publish(entity Entity) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[entity]))
	copy(handlers, b.handlers[entity])
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(entity)
	}
}

// Publisher é a visão mínima do barramento usada por quem só publica.
type Publisher interface {
	Publish(entity Entity)
}
