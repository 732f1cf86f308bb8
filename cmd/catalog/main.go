package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klastad/course-finder/pkg/catalog"
	"github.com/klastad/course-finder/pkg/common"
	"github.com/klastad/course-finder/pkg/messaging"
	"github.com/klastad/course-finder/pkg/server"
	"github.com/klastad/course-finder/pkg/storage"
	"github.com/klastad/course-finder/pkg/store"
	"github.com/klastad/course-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
)

var topicPrefix = "catalog"

func init() {
	p, ok := os.LookupEnv("TOPIC_PREFIX")
	if ok {
		topicPrefix = p
	}
}

type app struct {
	dirty   bool
	conn    *amqp.Connection
	storage *storage.DiskStorage
	store   *store.Catalog
}

func (a *app) ConnectAmqp(amqpUrl string) {
	conn, err := amqp.DialConfig(amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	a.conn = conn
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(ch, topicPrefix, messaging.TopicCourseUpserted, func(d amqp.Delivery) error {
		var items []types.RawCourse
		if err := sonic.Unmarshal(d.Body, &items); err != nil {
			log.Printf("Failed to unmarshal course upsert message %v", err)
			return nil
		}
		log.Printf("Got course upserts %d", len(items))
		a.store.HandleCourses(items)
		a.dirty = true
		return nil
	})

	trackCh, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(trackCh, topicPrefix, messaging.TopicTrackUpserted, func(d amqp.Delivery) error {
		var items []types.RawTrack
		if err := sonic.Unmarshal(d.Body, &items); err != nil {
			log.Printf("Failed to unmarshal track upsert message %v", err)
			return nil
		}
		log.Printf("Got track upserts %d", len(items))
		a.store.HandleTracks(items)
		a.dirty = true
		return nil
	})

	deleteCh, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	messaging.ListenToTopic(deleteCh, topicPrefix, messaging.TopicItemDeleted, func(d amqp.Delivery) error {
		var refs []types.ItemRef
		if err := sonic.Unmarshal(d.Body, &refs); err != nil {
			log.Printf("Failed to unmarshal delete message %v", err)
			return nil
		}
		log.Printf("Got deletions %d", len(refs))
		a.store.HandleDeletions(refs)
		a.dirty = true
		return nil
	})

	log.Printf("Listening for catalog changes")

	ticker := time.NewTicker(time.Minute)
	go func() {
		for range ticker.C {
			if a.dirty {
				a.dirty = false
				a.save()
			}
		}
	}()
}

func (a *app) save() {
	courses, err := a.store.FetchCourses(context.Background())
	if err == nil {
		if err = a.storage.SaveCourses(courses); err != nil {
			log.Printf("Failed to save courses: %v", err)
		}
	}
	tracks, err := a.store.FetchTracks(context.Background())
	if err == nil {
		if err = a.storage.SaveTracks(tracks); err != nil {
			log.Printf("Failed to save tracks: %v", err)
		}
	}
}

func main() {
	dataDir := "data"
	if d, ok := os.LookupEnv("DATA_DIR"); ok {
		dataDir = d
	}
	diskStorage, err := storage.NewDiskStorage(dataDir)
	if err != nil {
		log.Fatalf("Could not create data directory: %v", err)
	}
	catalogStore := store.NewCatalog()

	courses, err := diskStorage.LoadCourses()
	if err != nil {
		log.Printf("Could not load courses from disk: %v", err)
	} else if len(courses) > 0 {
		catalogStore.HandleCourses(courses)
	}
	tracks, err := diskStorage.LoadTracks()
	if err != nil {
		log.Printf("Could not load tracks from disk: %v", err)
	} else if len(tracks) > 0 {
		catalogStore.HandleTracks(tracks)
	}
	nrCourses, nrTracks := catalogStore.Counts()
	log.Printf("Loaded %d courses and %d tracks", nrCourses, nrTracks)

	a := &app{
		storage: diskStorage,
		store:   catalogStore,
	}

	if amqpUrl, ok := os.LookupEnv("RABBIT_HOST"); ok {
		a.ConnectAmqp(amqpUrl)
	}

	ws := &server.WebServer{
		Browser: catalog.NewBrowser(catalogStore),
		Store:   catalogStore,
	}

	if redisAddr, ok := os.LookupEnv("REDIS_ADDR"); ok {
		redisDb := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				redisDb = n
			}
		}
		ws.Cache = server.NewResponseCache(redisAddr, os.Getenv("REDIS_PASSWORD"), redisDb)
		defer ws.Cache.Close()
	}

	mux := ws.Handler()
	mux.Handle("/metrics", promhttp.Handler())

	listenAddr := ":8080"
	if addr, ok := os.LookupEnv("LISTEN_ADDR"); ok {
		listenAddr = addr
	}

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       120 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	httpServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddr, Handler: mux}, timeouts)

	common.RunServerWithShutdown(httpServer, "catalog browse server", timeouts.Shutdown, timeouts.Hook, func(ctx context.Context) error {
		if a.dirty {
			a.dirty = false
			a.save()
		}
		return nil
	})
}
