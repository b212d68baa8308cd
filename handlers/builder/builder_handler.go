package handlers // handlers/builder package

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/M-Sanjay12o52o/formulate/clients/formapi"
	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
	"github.com/M-Sanjay12o52o/formulate/pkg/builder"
	"github.com/M-Sanjay12o52o/formulate/pkg/flashmessages"
	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

const (
	draftSessionKey  = "builder_draft"
	issuesSessionKey = "builder_issues"
)

// BuilderHandler drives the form-builder pages. The draft lives in the
// session; every mutation is a form post followed by a redirect back to
// the builder.
type BuilderHandler struct {
	store     *session.Store
	submitter *builder.Submitter
}

// NewBuilderHandler creates a BuilderHandler submitting through the
// given creator (the API client in production).
func NewBuilderHandler(store *session.Store, creator builder.FormCreator) *BuilderHandler {
	return &BuilderHandler{
		store:     store,
		submitter: builder.NewSubmitter(creator),
	}
}

// ShowBuilder renders the builder page with the session draft and any
// validation issues left by the last submit attempt.
func (h *BuilderHandler) ShowBuilder(c *fiber.Ctx) error {
	draft := h.loadDraft(c)
	issues := h.consumeIssues(c)
	flash := flashmessages.GetFlashMessages(c)

	issuesByPath := make(map[string][]string, len(issues))
	for _, it := range issues {
		issuesByPath[it.Path] = append(issuesByPath[it.Path], it.Message)
	}

	return c.Render("builder/index", fiber.Map{
		"Title":        "Create New Form",
		"Draft":        draft,
		"FieldTypes":   formschema.FieldTypes(),
		"IssuesByPath": issuesByPath,
		"Success":      flash.Success,
		"Error":        flash.Error,
	}, "layouts/main")
}

// UpdateDetails stores the form title and description.
func (h *BuilderHandler) UpdateDetails(c *fiber.Ctx) error {
	draft := h.loadDraft(c)
	draft.Title = c.FormValue("title")
	draft.Description = c.FormValue("description")
	h.saveDraft(c, draft)
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

// AddField appends a new field with defaults.
func (h *BuilderHandler) AddField(c *fiber.Ctx) error {
	draft := h.loadDraft(c)
	draft.AddField()
	h.saveDraft(c, draft)
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

// RemoveField deletes the addressed field.
func (h *BuilderHandler) RemoveField(c *fiber.Ctx) error {
	draft := h.loadDraft(c)
	if !draft.RemoveField(c.Params("id")) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Field not found.")
		return c.Redirect("/builder", fiber.StatusSeeOther)
	}
	h.saveDraft(c, draft)
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

// UpdateField applies the posted attribute values to one field.
func (h *BuilderHandler) UpdateField(c *fiber.Ctx) error {
	draft := h.loadDraft(c)
	id := c.Params("id")

	err := draft.UpdateField(id, "name", c.FormValue("name"))
	if err == nil {
		err = draft.UpdateField(id, "type", c.FormValue("type"))
	}
	if err == nil {
		required := c.FormValue("required") == "on" || c.FormValue("required") == "true"
		err = draft.UpdateField(id, "required", required)
	}
	// Options only apply while the field is a select; the type rule
	// above has already initialized or cleared them.
	if err == nil && formschema.FieldType(c.FormValue("type")) == formschema.FieldTypeSelect {
		err = draft.UpdateFieldOptions(id, c.FormValue("options"))
	}
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Field could not be updated.")
		return c.Redirect("/builder", fiber.StatusSeeOther)
	}

	h.saveDraft(c, draft)
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

// SubmitForm validates the draft locally and, when it passes, sends it
// to the create endpoint. Per-field issues are stored for the next
// render; server rejections surface as a generic banner.
func (h *BuilderHandler) SubmitForm(c *fiber.Ctx) error {
	draft := h.loadDraft(c)

	created, err := h.submitter.Submit(c.UserContext(), draft)
	if err != nil {
		return h.handleSubmitError(c, err)
	}

	h.saveDraft(c, draft) // draft was cleared by the submitter
	configslog.SLog.Infof("Builder: form %s submitted", created.FormID)
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Form created successfully!")
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

func (h *BuilderHandler) handleSubmitError(c *fiber.Ctx, err error) error {
	if iss, ok := formschema.AsIssues(err); ok {
		h.storeIssues(c, iss)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please correct the highlighted errors in the form.")
		return c.Redirect("/builder", fiber.StatusSeeOther)
	}

	var ve *formapi.ValidationError
	switch {
	case errors.As(err, &ve):
		// The server re-ran the same rules the builder just passed; no
		// field detail to show, only the generic hint.
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Form validation failed. Please check your inputs.")
	case errors.Is(err, builder.ErrSubmissionInFlight):
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "A submission is already in progress.")
	default:
		configslog.Log.Error("Builder - SubmitForm failed", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "An unexpected error occurred.")
	}
	return c.Redirect("/builder", fiber.StatusSeeOther)
}

// --- session plumbing ---

func (h *BuilderHandler) loadDraft(c *fiber.Ctx) *builder.Draft {
	sess, err := h.store.Get(c)
	if err != nil {
		return builder.NewDraft()
	}
	raw, ok := sess.Get(draftSessionKey).(string)
	if !ok || raw == "" {
		return builder.NewDraft()
	}
	var draft builder.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		configslog.Log.Warn("Builder: session draft could not be decoded", zap.Error(err))
		return builder.NewDraft()
	}
	return &draft
}

func (h *BuilderHandler) saveDraft(c *fiber.Ctx, draft *builder.Draft) {
	sess, err := h.store.Get(c)
	if err != nil {
		configslog.Log.Error("Builder: session could not be opened", zap.Error(err))
		return
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		configslog.Log.Error("Builder: draft could not be encoded", zap.Error(err))
		return
	}
	sess.Set(draftSessionKey, string(raw))
	if err := sess.Save(); err != nil {
		configslog.Log.Error("Builder: session could not be saved", zap.Error(err))
	}
}

func (h *BuilderHandler) storeIssues(c *fiber.Ctx, iss formschema.Issues) {
	sess, err := h.store.Get(c)
	if err != nil {
		return
	}
	raw, err := json.Marshal(iss)
	if err != nil {
		return
	}
	sess.Set(issuesSessionKey, string(raw))
	_ = sess.Save()
}

func (h *BuilderHandler) consumeIssues(c *fiber.Ctx) formschema.Issues {
	sess, err := h.store.Get(c)
	if err != nil {
		return nil
	}
	raw, ok := sess.Get(issuesSessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	sess.Delete(issuesSessionKey)
	_ = sess.Save()

	var iss formschema.Issues
	if err := json.Unmarshal([]byte(raw), &iss); err != nil {
		return nil
	}
	return iss
}
