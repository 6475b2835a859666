package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/egaotan/anchor-workspace/resolver"
	"github.com/egaotan/anchor-workspace/workspace"
)

// Server is the HTTP bridge between the host UI, which owns the workspace,
// and the resolution layer.
type Server struct {
	ctx        context.Context
	log        *logrus.Entry
	listen     string
	workspace  *workspace.Memory
	resolver   *resolver.Resolver
	httpServer *http.Server
}

func NewServer(ctx context.Context, listen string, ws *workspace.Memory, log *logrus.Entry) *Server {
	return &Server{
		ctx:       ctx,
		log:       log,
		listen:    listen,
		workspace: ws,
		resolver:  resolver.NewResolver(ws, log.WithField("component", "resolver")),
	}
}

func (s *Server) Service() {
	s.StartRPC()
	<-s.ctx.Done()
	s.StopRPC()
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	g := router.Group("/api")
	g.PUT("/workspace/connection", s.putConnection)
	g.PUT("/workspace/wallet", s.putWallet)
	g.PUT("/workspace/idl", s.putIdl)
	g.DELETE("/workspace/idl", s.deleteIdl)
	g.PUT("/workspace/program-id", s.putProgramId)
	g.DELETE("/workspace/program-id", s.deleteProgramId)
	g.GET("/client", s.getClient)
	g.GET("/signer", s.getSigner)
	g.GET("/idl", s.getIdl)
	g.GET("/program-id", s.getProgramId)
	return router
}

func (s *Server) StartRPC() {
	s.httpServer = &http.Server{
		Addr:    s.listen,
		Handler: s.Router(),
	}
	s.log.WithField("listen", s.listen).Info("start rpc server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("ListenAndServe")
		}
	}()
}

func (s *Server) StopRPC() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.WithError(err).Warn("failed to shutdown rpc server")
		return
	}
	s.log.Info("rpc server has stopped")
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ConnectionRequest struct {
	Endpoint   string `json:"endpoint" binding:"required"`
	Commitment string `json:"commitment"`
}

type WalletRequest struct {
	Keypair workspace.Keypair `json:"keypair" binding:"required"`
}

type IdlRequest struct {
	Idl string `json:"idl" binding:"required"`
}

type ProgramIdRequest struct {
	ProgramId string `json:"programId" binding:"required"`
}

type ClientResponse struct {
	Endpoint   string `json:"endpoint"`
	Commitment string `json:"commitment"`
}

type SignerResponse struct {
	PublicKey string `json:"publicKey"`
}

type ProgramIdResponse struct {
	ProgramId string `json:"programId"`
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case resolver.IsNotFound(err):
		status = http.StatusNotFound
	case resolver.IsCorrupt(err):
		status = http.StatusUnprocessableEntity
	default:
		s.log.WithError(err).Error("resolution failed")
	}
	c.JSON(status, &ErrorResponse{Error: err.Error()})
}

func (s *Server) badRequest(c *gin.Context, err error) {
	s.log.WithError(err).Debug("bad request")
	c.JSON(http.StatusBadRequest, &ErrorResponse{Error: err.Error()})
}

func (s *Server) putConnection(c *gin.Context) {
	var req ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	s.workspace.SetConnection(req.Endpoint, req.Commitment)
	c.Status(http.StatusNoContent)
}

func (s *Server) putWallet(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	s.workspace.SetKeypair(req.Keypair)
	c.Status(http.StatusNoContent)
}

func (s *Server) putIdl(c *gin.Context) {
	var req IdlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	s.workspace.SetIdl(req.Idl)
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteIdl(c *gin.Context) {
	s.workspace.ClearIdl()
	c.Status(http.StatusNoContent)
}

func (s *Server) putProgramId(c *gin.Context) {
	var req ProgramIdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}
	s.workspace.SetProgramId(req.ProgramId)
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteProgramId(c *gin.Context) {
	s.workspace.ClearProgramId()
	c.Status(http.StatusNoContent)
}

func (s *Server) getClient(c *gin.Context) {
	client, err := s.resolver.Client(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &ClientResponse{
		Endpoint:   client.Endpoint(),
		Commitment: string(client.Commitment()),
	})
}

func (s *Server) getSigner(c *gin.Context) {
	signer, err := s.resolver.Signer(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &SignerResponse{PublicKey: signer.PublicKey().String()})
}

func (s *Server) getIdl(c *gin.Context) {
	parsed, err := s.resolver.Idl(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, parsed)
}

func (s *Server) getProgramId(c *gin.Context) {
	var explicit *solana.PublicKey
	if text := c.Query("explicit"); text != "" {
		programId, err := solana.PublicKeyFromBase58(text)
		if err != nil {
			s.badRequest(c, err)
			return
		}
		explicit = &programId
	}
	programId, err := s.resolver.ProgramId(c.Request.Context(), explicit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, &ProgramIdResponse{ProgramId: programId.String()})
}
