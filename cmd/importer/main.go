package main

import (
	"flag"
	"log"
	"os"
	"slices"

	"github.com/bytedance/sonic"
	"github.com/klastad/course-finder/pkg/messaging"
	"github.com/klastad/course-finder/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const batchSize = 500

// Importer reads a JSON dump of courses or tracks and publishes upsert
// batches over AMQP for the catalog server to pick up.
func main() {
	file := flag.String("file", "", "path to a JSON array of courses or tracks")
	scope := flag.String("scope", "courses", "courses or tracks")
	amqpUrl := flag.String("rabbit", os.Getenv("RABBIT_HOST"), "AMQP connection url")
	prefix := flag.String("prefix", "catalog", "topic prefix")
	flag.Parse()

	if *file == "" || *amqpUrl == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	conn, err := amqp.DialConfig(*amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open a channel: %v", err)
	}
	defer ch.Close()

	switch types.Scope(*scope) {
	case types.ScopeCourses:
		if err := messaging.DefineTopic(ch, *prefix, messaging.TopicCourseUpserted); err != nil {
			log.Fatalf("Failed to declare topic: %v", err)
		}
		var items []types.RawCourse
		if err := sonic.Unmarshal(data, &items); err != nil {
			log.Fatalf("Failed to parse courses: %v", err)
		}
		for chunk := range slices.Chunk(items, batchSize) {
			if err := messaging.SendChange(conn, *prefix, messaging.TopicCourseUpserted, chunk); err != nil {
				log.Fatalf("Failed to publish course batch: %v", err)
			}
		}
		log.Printf("Published %d courses", len(items))
	case types.ScopeTracks:
		if err := messaging.DefineTopic(ch, *prefix, messaging.TopicTrackUpserted); err != nil {
			log.Fatalf("Failed to declare topic: %v", err)
		}
		var items []types.RawTrack
		if err := sonic.Unmarshal(data, &items); err != nil {
			log.Fatalf("Failed to parse tracks: %v", err)
		}
		for chunk := range slices.Chunk(items, batchSize) {
			if err := messaging.SendChange(conn, *prefix, messaging.TopicTrackUpserted, chunk); err != nil {
				log.Fatalf("Failed to publish track batch: %v", err)
			}
		}
		log.Printf("Published %d tracks", len(items))
	default:
		log.Fatalf("Unknown scope %q", *scope)
	}
}
