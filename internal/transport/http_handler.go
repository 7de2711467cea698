package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/utxo/service"
	"github.com/goodnatureofminers/blockinsight7000-verifier/pkg/hexutil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var nullResult = []byte("null")

// HTTPHandler serves the JSON HTTP API.
type HTTPHandler struct {
	resolver PrevoutResolver
	verifier TransactionVerifier
	logger   *zap.Logger
}

// NewHTTPHandler returns an HTTPHandler instance.
func NewHTTPHandler(resolver PrevoutResolver, verifier TransactionVerifier, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		resolver: resolver,
		verifier: verifier,
		logger:   logger,
	}
}

// NewRouter wires the handler routes, request logging and the metrics endpoint.
func NewRouter(h *HTTPHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.logger))

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/gettxout", h.GetTxOut)
	router.POST("/verify", h.Verify)
	return router
}

// Health reports server health.
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetTxOut returns the node's gettxout result verbatim, or null when the output is absent.
// include_mempool defaults to true.
func (h *HTTPHandler) GetTxOut(c *gin.Context) {
	var req GetTxOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	txid, err := chainhash.NewHashFromStr(req.TxID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	includeMempool := true
	if req.IncludeMempool != nil {
		includeMempool = *req.IncludeMempool
	}

	out, err := h.resolver.Resolve(c.Request.Context(), *txid, *req.Vout, includeMempool)
	switch {
	case errors.Is(err, chain.ErrOutputNotFound):
		c.Data(http.StatusOK, gin.MIMEJSON, nullResult)
	case err != nil:
		h.logger.Warn("gettxout failed", zap.String("txid", req.TxID), zap.Uint32("vout", *req.Vout), zap.Error(err))
		c.JSON(httpStatus(err), newErrorResponse(err))
	default:
		c.Data(http.StatusOK, gin.MIMEJSON, out.Raw)
	}
}

// Verify checks every input of a hex-encoded raw transaction.
func (h *HTTPHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	raw, err := hexutil.Decode(req.TxHex)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Stage: string(service.StageDecode)})
		return
	}

	report, err := h.verifier.Verify(c.Request.Context(), raw)
	if err != nil {
		status := httpStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("verify failed", zap.Error(err))
		}
		c.JSON(status, newErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, newReport(report))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(started)),
		)
	}
}
