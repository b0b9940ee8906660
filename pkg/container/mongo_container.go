package container

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/procargo/backoffice/config"
	mongo "go.mongodb.org/mongo-driver/v2/mongo"
	mongooption "go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	mongoImageTag    = "8.0"
	mongoPrivatePort = 27017
	mongoPort        = docker.Port("27017/tcp")
)

// MongoSpec describes the mongo instance a suite needs. Host and Port are
// filled once the container is reachable.
type MongoSpec struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// MongoSpecFromConfig takes credentials, database and the preferred host port from cfg.
func MongoSpecFromConfig(cfg config.MongoDBConfig) MongoSpec {
	return MongoSpec{
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password.Value(),
		Database: cfg.Database,
	}
}

// Apply points cfg at the running container.
func (s MongoSpec) Apply(cfg config.MongoDBConfig) config.MongoDBConfig {
	cfg.Host = s.Host
	cfg.Port = s.Port
	cfg.User = s.Username
	cfg.Password = config.SecretValue(s.Password)
	cfg.Database = s.Database
	return cfg
}

func (s MongoSpec) uri() string {
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", s.Username, s.Password, s.Host, s.Port)
}

// RunMongoContainer starts the named mongo container, or reuses it when it is already
// running, and waits until it answers a ping.
func RunMongoContainer(builder *ContainerBuilder, name string, spec MongoSpec) (MongoSpec, error) {
	existing, err := builder.FindContainer(name)
	if err != nil {
		return MongoSpec{}, err
	}
	if existing != nil && existing.State == "running" {
		for _, bind := range existing.Ports {
			if bind.PrivatePort == mongoPrivatePort && bind.PublicPort != 0 {
				builder.AddContainer(existing.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
				spec.Host = bind.IP
				spec.Port = strconv.FormatInt(bind.PublicPort, 10)
				return spec, nil
			}
		}
		return MongoSpec{}, fmt.Errorf("mongo container %s publishes no port", name)
	}

	opts := &dockertest.RunOptions{
		Name:       name,
		Repository: "mongo",
		Tag:        mongoImageTag,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + spec.Username,
			"MONGO_INITDB_ROOT_PASSWORD=" + spec.Password,
		},
	}
	if spec.Database != "" {
		opts.Env = append(opts.Env, "MONGO_INITDB_DATABASE="+spec.Database)
	}
	if spec.Port != "" {
		opts.PortBindings = map[docker.Port][]docker.PortBinding{
			mongoPort: {{HostIP: "127.0.0.1", HostPort: spec.Port}},
		}
	}
	resource, err := builder.RunWithOptions(opts)
	if err != nil {
		return MongoSpec{}, err
	}
	builder.AddContainer(resource.Container.ID, ContainerInfo{Name: name, Type: ContainerTypeMongoDB})
	spec.Host = resource.GetBoundIP(string(mongoPort))
	spec.Port = resource.GetPort(string(mongoPort))

	if err := builder.Retry(func() error { return pingMongo(spec) }); err != nil {
		return MongoSpec{}, fmt.Errorf("wait for mongo container %s: %w", name, err)
	}
	return spec, nil
}

func pingMongo(spec MongoSpec) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	client, err := mongo.Connect(mongooption.Client().ApplyURI(spec.uri()))
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	return client.Ping(ctx, nil)
}
