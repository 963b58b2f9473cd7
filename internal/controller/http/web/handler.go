package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/docx_converter/internal/domain"
)

const (
	pathLogin     = "/login"
	pathRegister  = "/register"
	pathUpload    = "/upload"
	pathDownloads = "/upload/downloads"

	fileField = "file"

	// parts above this size are spooled to disk by the multipart reader
	multipartMemory = 8 << 20
)

type Uploader interface {
	Submit(ctx context.Context, form *domain.UploadForm)
}

type DownloadTaker interface {
	Take(token string) (*domain.Download, bool)
}

type Handler struct {
	log           *slog.Logger
	pages         *renderer
	uploader      Uploader
	downloads     DownloadTaker
	maxUploadSize int64
}

func NewHandler(log *slog.Logger, uploader Uploader, downloads DownloadTaker, maxUploadSize int64) (*Handler, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:           log,
		pages:         pages,
		uploader:      uploader,
		downloads:     downloads,
		maxUploadSize: maxUploadSize,
	}, nil
}

type loginPage struct {
	Email string
}

type registerPage struct {
	Email string
	Error string
}

type uploadPage struct {
	Message      string
	DownloadURL  string
	DownloadName string
}

func (h *Handler) RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, pathLogin, http.StatusFound)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, loginPage{})
}

// Login checks no credentials, there is no account service behind it.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, pathUpload, http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, registerPage{})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	form := domain.RegisterForm{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	if !form.Complete() {
		h.render(w, r, http.StatusUnprocessableEntity, pageRegister, registerPage{
			Email: form.Email,
			Error: "Email and password are required.",
		})
		return
	}

	// TODO: send the form to an account service once one exists; until then registration only navigates.
	h.log.DebugContext(r.Context(), "registration submitted, redirecting to login")

	http.Redirect(w, r, pathLogin, http.StatusSeeOther)
}

func (h *Handler) UploadPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageUpload, uploadPage{})
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	form, err := h.readUploadForm(r)
	if err != nil {
		status := http.StatusBadRequest

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
		}

		h.log.InfoContext(r.Context(), "failed to read upload form",
			slog.Int("status", status),
			slog.String("err", err.Error()),
		)

		h.render(w, r, status, pageUpload, uploadPage{Message: domain.MessageUploadError})
		return
	}

	h.uploader.Submit(r.Context(), form)

	page := uploadPage{Message: form.StatusMessage}
	if form.DownloadToken != "" {
		page.DownloadURL = pathDownloads + "/" + form.DownloadToken
		page.DownloadName = domain.DownloadName
	}

	h.render(w, r, http.StatusOK, pageUpload, page)
}

func (h *Handler) readUploadForm(r *http.Request) (*domain.UploadForm, error) {
	form := &domain.UploadForm{}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return form, nil
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	for _, header := range r.MultipartForm.File[fileField] {
		if header.Filename == "" {
			continue
		}

		doc, err := readDocument(header)
		if err != nil {
			return nil, err
		}

		form.SelectFile(doc)
	}

	return form, nil
}

func readDocument(header *multipart.FileHeader) (_ *domain.Document, err error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", header.Filename, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", header.Filename, err)
	}

	return &domain.Document{
		Name:    header.Filename,
		Content: content,
	}, nil
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	download, ok := h.downloads.Take(token)
	if !ok {
		http.Error(w, "download not found or expired", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", download.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": download.Name,
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(download.Content)))

	if _, err := w.Write(download.Content); err != nil {
		h.log.InfoContext(r.Context(), "failed to write download", slog.String("err", err.Error()))
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	err := h.pages.render(w, status, page, data)
	if errors.Is(err, errWriteResponse) {
		h.log.InfoContext(r.Context(), "failed to write page", slog.String("err", err.Error()))
		return
	}

	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
