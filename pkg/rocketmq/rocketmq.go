package rocketmq

import (
	"Landmark/config"
	"Landmark/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Publisher 积分流水事件投递
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
	Topic            string
}

var _ Publisher = (*Rocketmq)(nil)

// NewPublisher 未配置 nameserver 时返回空实现
func NewPublisher(cfg *config.RocketMQConfig) Publisher {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, ledger events will not be published")
		return NopPublisher{}
	}
	p, err := InitProducer(cfg)
	if err != nil {
		log.L.Error("init producer failed, ledger events will not be published", zap.Error(err))
		return NopPublisher{}
	}
	return &Rocketmq{RocketmqProducer: p, Topic: cfg.Topic}
}

// ProvidePublisher 退出时关闭 producer
func ProvidePublisher(cfg *config.RocketMQConfig) (Publisher, func()) {
	p := NewPublisher(cfg)
	return p, func() {
		if mq, ok := p.(*Rocketmq); ok {
			if err := mq.Shutdown(); err != nil {
				log.L.Warn("shutdown producer", zap.Error(err))
			}
		}
	}
}

func InitProducer(cfg *config.RocketMQConfig) (rocketmq.Producer, error) {
	opts := []producer.Option{
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
	}
	if cfg.Producer.Retry > 0 {
		opts = append(opts, producer.WithRetry(cfg.Producer.Retry))
	}
	p, err := rocketmq.NewProducer(opts...)
	if err != nil {
		return nil, err
	}
	if err = p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success")
	return p, nil
}

func (p *Rocketmq) Publish(ctx context.Context, key string, body []byte) error {
	msg := primitive.NewMessage(p.Topic, body)
	msg.WithKeys([]string{key})

	// 发送同步消息
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID), zap.String("key", key))
	return nil
}

func (p *Rocketmq) Shutdown() error {
	return p.RocketmqProducer.Shutdown()
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
