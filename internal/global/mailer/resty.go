package mailer

import (
	"context"
	"time"

	"project-submission-system/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client 基于邮件网关 HTTP API 的 Notifier 实现
type Client struct {
	http     *resty.Client
	endpoint string
	sender   string
}

var Default Notifier

func Init() {
	cfg := config.Get().Mail
	Default = NewClient(cfg)
}

func NewClient(cfg config.Mail) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetAuthToken(cfg.APIKey),
		endpoint: cfg.Endpoint,
		sender:   cfg.Sender,
	}
}

type sendRequest struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Subject  string   `json:"subject"`
	Template Template `json:"template"`
	Context  Context  `json:"context"`
}

// Send 单次同步发送，不做任何重试
func (m *Client) Send(ctx context.Context, recipient, subject string, tpl Template, tplCtx Context) error {
	resp, err := m.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:     m.sender,
			To:       recipient,
			Subject:  subject,
			Template: tpl,
			Context:  tplCtx,
		}).
		Post(m.endpoint)
	if err != nil {
		return errors.Wrap(err, "请求邮件网关失败")
	}
	if resp.IsError() {
		return errors.Errorf("邮件网关返回异常状态: %s", resp.Status())
	}
	return nil
}
