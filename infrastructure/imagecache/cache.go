// Package imagecache guarda em disco, de forma temporária, as imagens de
// produto baixadas do núcleo do POS. Cada entrada é um recurso com ciclo de
// vida explícito: substituição, remoção e encerramento sempre liberam o
// arquivo anterior, em qualquer caminho de saída.
package imagecache

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-admin-api/pkg/utils"
)

type entry struct {
	path        string
	contentType string
}

type Cache struct {
	mu      sync.Mutex
	dir     string
	entries map[int]entry
}

// New cria o cache, garantindo a existência do diretório de trabalho.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar o diretório do cache de imagens")
	}

	return &Cache{
		dir:     dir,
		entries: make(map[int]entry),
	}, nil
}

// Put grava a imagem do produto e libera a entrada anterior, se houver.
func (c *Cache) Put(productID int, contentType string, data []byte) error {
	name, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar o nome do arquivo de imagem")
	}

	path := filepath.Join(c.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "erro ao gravar a imagem no cache")
	}

	c.mu.Lock()
	previous, had := c.entries[productID]
	c.entries[productID] = entry{path: path, contentType: contentType}
	c.mu.Unlock()

	if had {
		c.release(previous)
	}

	return nil
}

// Get devolve os bytes e o content type da imagem cacheada, se existir.
func (c *Cache) Get(productID int) ([]byte, string, bool) {
	c.mu.Lock()
	cached, ok := c.entries[productID]
	c.mu.Unlock()

	if !ok {
		return nil, "", false
	}

	data, err := os.ReadFile(cached.path)
	if err != nil {
		// Entrada órfã: alguém removeu o arquivo por fora. Descartar.
		logrus.WithError(err).WithField("product_id", productID).
			Warn("imagecache: entrada inválida descartada")
		c.Remove(productID)
		return nil, "", false
	}

	return data, cached.contentType, true
}

// Remove libera a entrada de um produto.
func (c *Cache) Remove(productID int) {
	c.mu.Lock()
	cached, ok := c.entries[productID]
	delete(c.entries, productID)
	c.mu.Unlock()

	if ok {
		c.release(cached)
	}
}

// Close libera todas as entradas. Seguro para chamar mais de uma vez.
func (c *Cache) Close() {
	c.mu.Lock()
	entries := c.entries
	c.entries = make(map[int]entry)
	c.mu.Unlock()

	for _, cached := range entries {
		c.release(cached)
	}
}

func (c *Cache) release(cached entry) {
	if err := os.Remove(cached.path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", cached.path).
			Warn("imagecache: erro ao liberar arquivo de imagem")
	}
}
