package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/kilianp07/boater/infra/logger"
)

// Request is the payload received on the request topic.
type Request struct {
	RequestID  string  `json:"request_id"`
	EngineType string  `json:"engine_type"`
	HP         int     `json:"hp"`
	SpeedKnots float64 `json:"speed_knots"`
	Seats      int     `json:"seats"`
	DistanceKm float64 `json:"distance_km"`
}

// Response is published for every request, successful or not.
type Response struct {
	RequestID   string  `json:"request_id"`
	EngineType  string  `json:"engine_type"`
	FuelPrice   float64 `json:"fuel_price"`
	PriceSource string  `json:"price_source"`
	CostPerKm   float64 `json:"cost_per_km"`
	CostTotal   float64 `json:"cost_total"`
	Error       string  `json:"error,omitempty"`
}

// Estimator prices the trip described by a request.
type Estimator interface {
	EstimateRequest(ctx context.Context, req Request) (Response, error)
}

// Responder answers estimate requests received over MQTT.
type Responder struct {
	cli       pahoClient
	estimator Estimator
	reqTopic  string
	respTopic string
	qos       byte
	log       logger.Logger
	timeout   time.Duration
	ctx       context.Context
}

// NewResponder connects to the broker and subscribes to the request topic.
// Requests are handled with ctx until Close is called.
func NewResponder(ctx context.Context, cfg Config, est Estimator) (*Responder, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt-responder")
	r := &Responder{
		estimator: est,
		reqTopic:  cfg.RequestTopic,
		respTopic: strings.TrimSuffix(cfg.ResponseTopic, "/"),
		qos:       cfg.QoS,
		log:       log,
		timeout:   30 * time.Second,
		ctx:       ctx,
	}
	opts.OnConnect = func(c paho.Client) {
		log.Infof("MQTT connected")
		if token := c.Subscribe(r.reqTopic, r.qos, r.onRequest); token.Wait() && token.Error() != nil {
			log.Errorf("subscribe error: %v", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	r.cli = c
	return r, nil
}

func (r *Responder) onRequest(_ paho.Client, msg paho.Message) {
	resp := r.handle(msg.Payload())
	payload, err := json.Marshal(resp)
	if err != nil {
		r.log.Errorf("encode response %s: %v", resp.RequestID, err)
		return
	}
	topic := fmt.Sprintf("%s/%s", r.respTopic, resp.RequestID)
	token := r.cli.Publish(topic, r.qos, false, payload)
	if token.Wait() && token.Error() != nil {
		r.log.Errorf("publish response %s: %v", resp.RequestID, token.Error())
		return
	}
	r.log.Debugw("estimate answered", map[string]any{
		"request_id": resp.RequestID,
		"topic":      topic,
		"error":      resp.Error,
	})
}

// handle decodes one request and runs the estimator. Failures are reported
// in the response.
func (r *Responder) handle(payload []byte) (resp Response) {
	var req Request
	defer func() {
		if p := recover(); p != nil {
			r.log.Errorf("estimate %s panicked: %v", req.RequestID, p)
			resp = Response{RequestID: req.RequestID, EngineType: req.EngineType, Error: fmt.Sprintf("internal error: %v", p)}
		}
	}()
	if err := json.Unmarshal(payload, &req); err != nil {
		return Response{RequestID: uuid.NewString(), Error: fmt.Sprintf("decode request: %v", err)}
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	ctx, cancel := context.WithTimeout(r.baseContext(), r.timeout)
	defer cancel()

	resp, err := r.estimator.EstimateRequest(ctx, req)
	resp.RequestID = req.RequestID
	resp.EngineType = req.EngineType
	if err != nil {
		resp.CostPerKm, resp.CostTotal = 0, 0
		resp.Error = err.Error()
	}
	return resp
}

func (r *Responder) baseContext() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Close disconnects from the broker.
func (r *Responder) Close() {
	if r.cli != nil && r.cli.IsConnected() {
		r.cli.Disconnect(250)
	}
}
