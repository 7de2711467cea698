package transport

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/hexutil"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

const (
	// CodecName is the content-subtype the verifier service is served with.
	CodecName = "json"

	verifierServiceName = "blockinsight7000.verifier.v1.VerifierService"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec carries the same JSON messages as the HTTP API over gRPC.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

// VerifierServiceServer is the server API for the verifier service.
type VerifierServiceServer interface {
	GetTxOut(context.Context, *GetTxOutRequest) (*GetTxOutResponse, error)
	VerifyTransaction(context.Context, *VerifyRequest) (*Report, error)
}

// VerifierServiceDesc describes the verifier service for grpc.Server.RegisterService.
var VerifierServiceDesc = grpc.ServiceDesc{
	ServiceName: verifierServiceName,
	HandlerType: (*VerifierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetTxOut", Handler: getTxOutHandler},
		{MethodName: "VerifyTransaction", Handler: verifyTransactionHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterVerifierServiceServer registers srv on s.
func RegisterVerifierServiceServer(s grpc.ServiceRegistrar, srv VerifierServiceServer) {
	s.RegisterService(&VerifierServiceDesc, srv)
}

func getTxOutHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetTxOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).GetTxOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + verifierServiceName + "/GetTxOut"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VerifierServiceServer).GetTxOut(ctx, req.(*GetTxOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func verifyTransactionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VerifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerifierServiceServer).VerifyTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + verifierServiceName + "/VerifyTransaction"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VerifierServiceServer).VerifyTransaction(ctx, req.(*VerifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VerifierHandler implements VerifierServiceServer.
type VerifierHandler struct {
	resolver PrevoutResolver
	verifier TransactionVerifier
	logger   *zap.Logger
}

// NewVerifierHandler returns a VerifierHandler instance.
func NewVerifierHandler(resolver PrevoutResolver, verifier TransactionVerifier, logger *zap.Logger) *VerifierHandler {
	return &VerifierHandler{
		resolver: resolver,
		verifier: verifier,
		logger:   logger,
	}
}

// GetTxOut returns the node's gettxout result; include_mempool defaults to true.
func (h *VerifierHandler) GetTxOut(ctx context.Context, req *GetTxOutRequest) (*GetTxOutResponse, error) {
	if req.Vout == nil {
		return nil, status.Error(codes.InvalidArgument, "vout is required")
	}
	if len(req.TxID) != 2*chainhash.HashSize {
		return nil, status.Errorf(codes.InvalidArgument, "txid must be %d hex characters", 2*chainhash.HashSize)
	}
	txid, err := chainhash.NewHashFromStr(req.TxID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	includeMempool := true
	if req.IncludeMempool != nil {
		includeMempool = *req.IncludeMempool
	}

	out, err := h.resolver.Resolve(ctx, *txid, *req.Vout, includeMempool)
	switch {
	case errors.Is(err, chain.ErrOutputNotFound):
		return &GetTxOutResponse{Result: nullResult}, nil
	case err != nil:
		return nil, status.Error(grpcCode(err), err.Error())
	default:
		return &GetTxOutResponse{Result: out.Raw}, nil
	}
}

// VerifyTransaction checks every input of a hex-encoded raw transaction.
func (h *VerifierHandler) VerifyTransaction(ctx context.Context, req *VerifyRequest) (*Report, error) {
	raw, err := hexutil.Decode(req.TxHex)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	report, err := h.verifier.Verify(ctx, raw)
	if err != nil {
		code := grpcCode(err)
		if code == codes.Internal || code == codes.Unavailable {
			h.logger.Error("verify failed", zap.Error(err))
		}
		return nil, status.Error(code, err.Error())
	}
	resp := newReport(report)
	return &resp, nil
}

// VerifierServiceClient is the client API for the verifier service.
type VerifierServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewVerifierServiceClient returns a client calling the service over cc with the JSON codec.
func NewVerifierServiceClient(cc grpc.ClientConnInterface) *VerifierServiceClient {
	return &VerifierServiceClient{cc: cc}
}

func (c *VerifierServiceClient) GetTxOut(ctx context.Context, in *GetTxOutRequest, opts ...grpc.CallOption) (*GetTxOutResponse, error) {
	out := new(GetTxOutResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+verifierServiceName+"/GetTxOut", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *VerifierServiceClient) VerifyTransaction(ctx context.Context, in *VerifyRequest, opts ...grpc.CallOption) (*Report, error) {
	out := new(Report)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+verifierServiceName+"/VerifyTransaction", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
