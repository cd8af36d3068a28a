package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"siconitcc/app/config"
)

// changeChannel carries "collection changed, reload" broadcasts. Clients and
// other service instances reload the affected collection wholesale rather
// than applying incremental diffs.
const changeChannel = "siconitcc:changes"

type changeEvent struct {
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
}

var (
	listenersMu sync.RWMutex
	listeners   []func(collection string)
)

// OnChange registers an in-process callback invoked on every collection
// change, local or broadcast. Used for cache invalidation.
func OnChange(fn func(collection string)) {
	listenersMu.Lock()
	defer listenersMu.Unlock()
	listeners = append(listeners, fn)
}

func dispatch(collection string) {
	listenersMu.RLock()
	defer listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(collection)
	}
}

// NotifyChange announces that a collection was written. The event always
// reaches in-process listeners; with Redis configured it is also broadcast so
// other instances (and SSE-subscribed tabs) reload as well.
func NotifyChange(collection string) {
	dispatch(collection)

	if config.RDB == nil {
		return
	}
	payload, err := json.Marshal(changeEvent{Collection: collection, At: time.Now()})
	if err != nil {
		return
	}
	if err := config.RDB.Publish(config.Ctx, changeChannel, payload).Err(); err != nil {
		log.Printf("Failed to publish change event for %s: %v", collection, err)
	}
}

// StartChangeListener subscribes to the broadcast channel and feeds remote
// events into the in-process listeners. No-op without Redis.
func StartChangeListener() {
	if config.RDB == nil {
		return
	}

	sub := config.RDB.Subscribe(config.Ctx, changeChannel)
	go func() {
		log.Println("Change listener started...")
		for msg := range sub.Channel() {
			var ev changeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("Ignoring malformed change event: %v", err)
				continue
			}
			dispatch(ev.Collection)
		}
	}()
}
