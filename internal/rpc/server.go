// Package rpc implements the gRPC adapter. It exposes the same two entry
// points as the REST API and maps domain errors to gRPC status codes:
// TemplateNotFoundError to NotFound, InvalidInputError to InvalidArgument,
// everything else to Internal.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaharia-lab/courier/internal/dispatch"
	"github.com/shaharia-lab/courier/internal/notify"
)

// ReceiverMessage is one email recipient on the wire.
type ReceiverMessage struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SendEmailRequest mirrors the REST email-send payload.
type SendEmailRequest struct {
	TemplateName string            `json:"templateName"`
	Parameters   map[string]any    `json:"parameters,omitempty"`
	Receivers    []ReceiverMessage `json:"receivers"`
}

// SendPushRequest mirrors the REST push-send payload.
type SendPushRequest struct {
	DeviceTokens     []string          `json:"deviceTokens"`
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	ImageURL         string            `json:"imageUrl,omitempty"`
	Payload          map[string]string `json:"payload,omitempty"`
	NotificationType string            `json:"notificationType,omitempty"`
	CustomSound      string            `json:"customSound,omitempty"`
}

// Empty is the response for both calls; success carries no payload.
type Empty struct{}

// Server implements the NotificationService RPC surface.
type Server struct {
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
	grpcServer *grpc.Server
	port       int
}

// New creates a gRPC Server listening on the given port when Run is called.
func New(dispatcher *dispatch.Dispatcher, port int, logger *slog.Logger) *Server {
	s := &Server{
		dispatcher: dispatcher,
		logger:     logger,
		port:       port,
	}
	s.grpcServer = grpc.NewServer(grpc.ForceServerCodec(jsonCodec{}))
	s.grpcServer.RegisterService(&serviceDesc, s)
	return s
}

// Run starts the gRPC server and blocks until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	lc := &net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listening on grpc port %d: %w", s.port, err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(ln); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down grpc server")
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// SendTransactionalEmail handles the email-send RPC.
func (s *Server) SendTransactionalEmail(ctx context.Context, req *SendEmailRequest) (*Empty, error) {
	if len(req.Receivers) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one receiver is required")
	}

	receivers := make([]notify.Receiver, 0, len(req.Receivers))
	for _, r := range req.Receivers {
		receiver, err := notify.NewReceiver(r.Email, r.Name)
		if err != nil {
			return nil, s.toStatus(err)
		}
		receivers = append(receivers, receiver)
	}

	err := s.dispatcher.SendTransactionalEmail(ctx, dispatch.SendTransactionalEmailCommand{
		TemplateName: req.TemplateName,
		Parameters:   req.Parameters,
		Receivers:    receivers,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &Empty{}, nil
}

// SendPushNotification handles the push-send RPC.
func (s *Server) SendPushNotification(ctx context.Context, req *SendPushRequest) (*Empty, error) {
	if len(req.DeviceTokens) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one device token is required")
	}

	typ, err := notify.ParseNotificationType(req.NotificationType)
	if err != nil {
		return nil, s.toStatus(err)
	}

	err = s.dispatcher.SendPushNotification(ctx, dispatch.SendPushNotificationCommand{
		DeviceTokens: req.DeviceTokens,
		Title:        req.Title,
		Body:         req.Body,
		ImageURL:     req.ImageURL,
		Payload:      req.Payload,
		Type:         typ,
		CustomSound:  req.CustomSound,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &Empty{}, nil
}

// toStatus maps domain errors to gRPC status errors.
func (s *Server) toStatus(err error) error {
	var notFound *notify.TemplateNotFoundError
	var invalid *notify.InvalidInputError

	switch {
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, notFound.Error())
	case errors.As(err, &invalid):
		return status.Error(codes.InvalidArgument, invalid.Error())
	default:
		s.logger.Error("rpc request failed", slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal error")
	}
}

// notificationServiceServer is the method set registered under the service
// descriptor below.
type notificationServiceServer interface {
	SendTransactionalEmail(context.Context, *SendEmailRequest) (*Empty, error)
	SendPushNotification(context.Context, *SendPushRequest) (*Empty, error)
}

const serviceName = "courier.v1.NotificationService"

// serviceDesc registers the JSON-framed methods. There is no generated
// protobuf for this service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*notificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendTransactionalEmail", Handler: sendTransactionalEmailHandler},
		{MethodName: "SendPushNotification", Handler: sendPushNotificationHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func sendTransactionalEmailHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendEmailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(notificationServiceServer).SendTransactionalEmail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/SendTransactionalEmail",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(notificationServiceServer).SendTransactionalEmail(ctx, req.(*SendEmailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func sendPushNotificationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendPushRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(notificationServiceServer).SendPushNotification(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/SendPushNotification",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(notificationServiceServer).SendPushNotification(ctx, req.(*SendPushRequest))
	}
	return interceptor(ctx, in, info, handler)
}
