package feed

import (
	"crypto/tls"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"boattracker-viz/telemetry"
)

// Subscriber owns the realtime subscription to the boat feed. Every message
// on the topic is a full fleet snapshot; the subscriber decodes it and hands
// it to OnData. Connection problems go to OnError and flip the feed state.
//
// Start acquires the subscription, Stop releases it; the done channel is
// checked at the top of every callback so nothing fires after Stop returns.
type Subscriber struct {
	config  Config
	client  mqtt.Client
	stats   *Statistics
	onData  func(snap telemetry.Snapshot, size int)
	onError func(err error)

	done     chan struct{}
	stopOnce sync.Once

	mu         sync.RWMutex
	state      State
	lastError  string
	firstTimer *time.Timer
	gotFirst   bool
}

func NewSubscriber(config Config, onData func(telemetry.Snapshot, int), onError func(error)) *Subscriber {
	return &Subscriber{
		config:  config,
		stats:   NewStatistics(),
		onData:  onData,
		onError: onError,
		done:    make(chan struct{}),
		state:   StateLoading,
	}
}

func (s *Subscriber) Start() error {
	log.Printf("[FEED] Starting subscriber...")
	log.Printf("[FEED] Config: Broker=%s:%d Topic=%s", s.config.Broker, s.config.Port, s.config.Topic)

	opts := mqtt.NewClientOptions()

	protocol := "tcp"
	if s.config.UseTLS {
		protocol = "tls"
	}
	opts.AddBroker(fmt.Sprintf("%s://%s:%d", protocol, s.config.Broker, s.config.Port))
	opts.SetClientID(fmt.Sprintf("boattracker-viz-%d", time.Now().Unix()))

	if s.config.Username != "" {
		opts.SetUsername(s.config.Username)
		opts.SetPassword(s.config.Password)
	}
	if s.config.UseTLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: s.config.InsecureSkipTLS})
	}

	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectTimeout(s.config.ConnectTimeout)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)

	opts.OnConnect = s.handleConnect
	opts.OnConnectionLost = s.handleConnectionLost
	opts.OnReconnecting = func(mqtt.Client, *mqtt.ClientOptions) {
		log.Printf("[MQTT] Reconnecting...")
	}

	s.client = mqtt.NewClient(opts)

	token := s.client.Connect()
	if !token.WaitTimeout(s.config.ConnectTimeout) {
		return fmt.Errorf("mqtt connect timeout")
	}
	if token.Error() != nil {
		return fmt.Errorf("mqtt connect failed: %w", token.Error())
	}

	// Race the first snapshot against the timeout so the UI's loading state
	// always resolves.
	timeout := s.config.FirstEventTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	s.mu.Lock()
	s.firstTimer = time.AfterFunc(timeout, s.firstEventTimeout)
	s.mu.Unlock()

	log.Printf("[FEED] Subscriber started")
	return nil
}

// Stop releases the subscription. Safe to call more than once.
func (s *Subscriber) Stop() {
	s.stopOnce.Do(func() {
		log.Printf("[FEED] Stopping subscriber...")
		close(s.done)

		s.mu.Lock()
		if s.firstTimer != nil {
			s.firstTimer.Stop()
		}
		s.mu.Unlock()

		if s.client != nil && s.client.IsConnected() {
			s.client.Unsubscribe(s.config.Topic)
			s.client.Disconnect(1000)
		}

		log.Printf("[FEED] Subscriber stopped - %d snapshots received", s.stats.SnapshotsReceived)
	})
}

func (s *Subscriber) handleConnect(client mqtt.Client) {
	log.Printf("[MQTT] Connected")

	token := client.Subscribe(s.config.Topic, 0, s.handleMessage)
	if !token.WaitTimeout(5 * time.Second) {
		log.Printf("[MQTT] Subscribe timeout for %s", s.config.Topic)
		s.reportError(fmt.Errorf("subscribe timeout for %s", s.config.Topic))
		return
	}
	if token.Error() != nil {
		log.Printf("[MQTT] Subscribe error: %v", token.Error())
		s.reportError(fmt.Errorf("subscribe failed: %w", token.Error()))
		return
	}

	log.Printf("[MQTT] Subscribed to %s", s.config.Topic)
}

func (s *Subscriber) handleConnectionLost(client mqtt.Client, err error) {
	select {
	case <-s.done:
		return
	default:
	}
	log.Printf("[MQTT] Connection lost: %v (will auto-reconnect)", err)
	s.reportError(err)
}

func (s *Subscriber) handleMessage(client mqtt.Client, msg mqtt.Message) {
	select {
	case <-s.done:
		return
	default:
	}

	snap, err := DecodeSnapshot(msg.Payload())
	if err != nil {
		s.stats.RecordSnapshot(0, false)
		log.Printf("[FEED] Dropping malformed snapshot: %v", err)
		return
	}

	s.markFirstEvent()
	s.setState(StateConnected, "")
	s.stats.RecordSnapshot(len(snap), true)

	if s.onData != nil {
		s.onData(snap, len(msg.Payload()))
	}
}

func (s *Subscriber) firstEventTimeout() {
	select {
	case <-s.done:
		return
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		log.Printf("[FEED] No snapshot within %s - showing empty state", s.config.FirstEventTimeout)
		s.state = StateEmpty
	}
}

func (s *Subscriber) markFirstEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gotFirst {
		return
	}
	s.gotFirst = true
	if s.firstTimer != nil {
		s.firstTimer.Stop()
	}
}

func (s *Subscriber) reportError(err error) {
	s.markFirstEvent()
	s.setState(StateError, err.Error())
	if s.onError != nil {
		s.onError(err)
	}
}

func (s *Subscriber) setState(state State, msg string) {
	s.mu.Lock()
	s.state = state
	s.lastError = msg
	s.mu.Unlock()
}

// State returns the lifecycle state and, for StateError, the last message.
func (s *Subscriber) State() (State, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.lastError
}

func (s *Subscriber) Stats() *Statistics {
	return s.stats
}

func (s *Subscriber) IsConnected() bool {
	return s.client != nil && s.client.IsConnected()
}
