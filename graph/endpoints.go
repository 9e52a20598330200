package graph

// Shared parameter declarations. Path parameters are always required.
var (
	apiVersion = Param{
		Name:        "api_version",
		In:          InPath,
		Type:        "string",
		Required:    true,
		Description: "The Graph API version to use (e.g. 'v16.0')",
	}

	wabaID = Param{
		Name:        "waba_id",
		In:          InPath,
		Type:        "string",
		Required:    true,
		Description: "The WhatsApp Business Account ID",
	}

	businessAccountID = Param{
		Name:        "business_account_id",
		In:          InPath,
		Type:        "string",
		Required:    true,
		Description: "The Business Account ID",
	}

	businessPhoneNumberID = Param{
		Name:        "business_phone_number_id",
		In:          InPath,
		Type:        "string",
		Required:    true,
		Description: "The WhatsApp Business Phone Number ID",
	}

	fields = Param{
		Name:        "fields",
		In:          InQuery,
		Type:        "string",
		Required:    false,
		Description: "Comma-separated field names to include in the response",
	}
)

// templateBody is the JSON body shared by the template create/edit endpoints
var templateBody = []Param{
	{Name: "name", In: InBody, Type: "string", Description: "Unique template name"},
	{Name: "category", In: InBody, Type: "string", Description: "Template category (e.g. AUTHENTICATION, MARKETING, UTILITY)"},
	{Name: "components", In: InBody, Type: "array", Description: "Structured template components"},
	{Name: "language", In: InBody, Type: "string", Description: "Template language code (e.g. 'en_US')"},
}

// DefaultCatalog returns the builtin WhatsApp Business Platform endpoint
// table. Paths and parameter bindings mirror the Graph API reference,
// including its quirks: commerce settings are updated via query parameters
// on a POST, and upload step 2 sends file_offset as a header with the raw
// payload as the request body.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:        "get_analytics",
			Method:      "GET",
			Path:        "/{api_version}/{waba_id}",
			Description: "Retrieve WhatsApp Business Account analytics data.",
			Params:      []Param{apiVersion, wabaID, fields},
		},
		{
			Name:        "get_credit_lines",
			Method:      "GET",
			Path:        "/{api_version}/{business_account_id}/extendedcredits",
			Description: "Retrieve credit line information for a business account.",
			Params:      []Param{apiVersion, businessAccountID},
		},
		{
			Name:        "get_business_account_specific_fields",
			Method:      "GET",
			Path:        "/{api_version}/{business_account_id}",
			Description: "Retrieve business account data with the specified fields.",
			Params:      []Param{apiVersion, businessAccountID, fields},
		},
		{
			Name:        "get_commerce_settings",
			Method:      "GET",
			Path:        "/{api_version}/{business_phone_number_id}/whatsapp_commerce_settings",
			Description: "Retrieve the commerce settings configured for a business phone number.",
			Params:      []Param{apiVersion, businessPhoneNumberID},
		},
		{
			Name:        "set_or_update_commerce_settings",
			Method:      "POST",
			Path:        "/{api_version}/{business_phone_number_id}/whatsapp_commerce_settings",
			Description: "Set or update WhatsApp commerce settings.",
			Params: []Param{
				apiVersion, businessPhoneNumberID,
				{Name: "is_cart_enabled", In: InQuery, Type: "boolean", Description: "Whether the shopping cart is enabled"},
				{Name: "is_catalog_visible", In: InQuery, Type: "boolean", Description: "Whether the product catalog is visible"},
			},
		},
		{
			Name:        "upload_media_step1_of2_create_session",
			Method:      "POST",
			Path:        "/{api_version}/{app_id}/uploads",
			Description: "Create a resumable media upload session. Returns the session id consumed by upload_media_step2_of2_initiate_upload.",
			Params: []Param{
				apiVersion,
				{Name: "app_id", In: InPath, Type: "string", Required: true, Description: "The Application ID"},
				{Name: "file_length", In: InQuery, Type: "integer", Description: "File size, in bytes"},
				{Name: "file_type", In: InQuery, Type: "string", Description: "File MIME type (e.g. 'image/jpg')"},
			},
		},
		{
			Name:        "upload_media_step2_of2_initiate_upload",
			Method:      "POST",
			Path:        "/{api_version}/{session_id}",
			Description: "Upload file content to a previously created upload session.",
			Params: []Param{
				apiVersion,
				{Name: "session_id", In: InPath, Type: "string", Required: true, Description: "The upload session ID returned by step 1"},
				{Name: "file_offset", In: InHeader, Type: "integer", Description: "Byte offset for the resumable upload (0 for the first chunk)"},
				{Name: "payload", In: InRawBody, Type: "string", Description: "Raw file content"},
			},
		},
		{
			Name:        "get_business_phone_number",
			Method:      "GET",
			Path:        "/{api_version}/{business_phone_number_id}",
			Description: "Retrieve a business phone number.",
			Params:      []Param{apiVersion, businessPhoneNumberID, fields},
		},
		{
			Name:        "get_all_business_phone_numbers",
			Method:      "GET",
			Path:        "/{api_version}/{waba_id}/phone_numbers",
			Description: "List all phone numbers associated with a WhatsApp Business Account.",
			Params: []Param{
				apiVersion, wabaID, fields,
				{Name: "filtering", In: InQuery, Type: "array", Description: "Filter conditions applied to the listing"},
			},
		},
		{
			Name:        "get_qr_code",
			Method:      "GET",
			Path:        "/{api_version}/{business_phone_number_id}/message_qrdls/{qr_code_id}",
			Description: "Retrieve a single message QR code.",
			Params: []Param{
				apiVersion, businessPhoneNumberID,
				{Name: "qr_code_id", In: InPath, Type: "string", Required: true, Description: "The QR code ID"},
			},
		},
		{
			Name:        "delete_qr_code",
			Method:      "DELETE",
			Path:        "/{api_version}/{business_phone_number_id}/message_qrdls/{qr_code_id}",
			Description: "Delete a message QR code.",
			Params: []Param{
				apiVersion, businessPhoneNumberID,
				{Name: "qr_code_id", In: InPath, Type: "string", Required: true, Description: "The QR code ID"},
			},
		},
		{
			Name:        "get_all_qr_codes_default_fields",
			Method:      "GET",
			Path:        "/{api_version}/{business_phone_number_id}/message_qrdls",
			Description: "List message QR codes with default fields.",
			Params: []Param{
				apiVersion, businessPhoneNumberID,
				{Name: "code", In: InQuery, Type: "string", Description: "Filter by QR code identifier"},
				{Name: "fields", In: InQuery, Type: "string", Description: "Fields to return; '.format' may be SVG or PNG"},
			},
		},
		{
			Name:        "create_qr_code",
			Method:      "POST",
			Path:        "/{api_version}/{business_phone_number_id}/message_qrdls",
			Description: "Create a message QR code with an optional prefilled message.",
			Params: []Param{
				apiVersion, businessPhoneNumberID,
				{Name: "code", In: InBody, Type: "string", Description: "Code to assign to the QR code"},
				{Name: "prefilled_message", In: InBody, Type: "string", Description: "Message prefilled in the chat opened by the QR code"},
				{Name: "generate_qr_image", In: InBody, Type: "string", Description: "Image format to generate (SVG or PNG)"},
			},
		},
		{
			Name:        "get_template_by_id_default_fields",
			Method:      "GET",
			Path:        "/{api_version}/{template_id}",
			Description: "Retrieve a message template by ID with default fields.",
			Params: []Param{
				apiVersion,
				{Name: "template_id", In: InPath, Type: "string", Required: true, Description: "The message template ID"},
			},
		},
		{
			Name:        "edit_template",
			Method:      "POST",
			Path:        "/{api_version}/{template_id}",
			Description: "Edit an existing message template.",
			Params: append([]Param{
				apiVersion,
				{Name: "template_id", In: InPath, Type: "string", Required: true, Description: "The message template ID"},
			}, templateBody...),
		},
		{
			Name:        "get_template_by_name_default_fields",
			Method:      "GET",
			Path:        "/{api_version}/{waba_id}/message_templates",
			Description: "Retrieve message templates by name with default fields.",
			Params: []Param{
				apiVersion, wabaID,
				{Name: "name", In: InQuery, Type: "string", Description: "Name of the template to retrieve"},
			},
		},
		{
			Name:        "create_message_template",
			Method:      "POST",
			Path:        "/{api_version}/{waba_id}/message_templates",
			Description: "Create a message template.",
			Params: []Param{
				apiVersion, wabaID,
				{Name: "name", In: InBody, Type: "string", Required: true, Description: "Unique template name"},
				{Name: "category", In: InBody, Type: "string", Required: true, Description: "Template category (e.g. AUTHENTICATION, MARKETING, UTILITY)"},
				{Name: "components", In: InBody, Type: "array", Required: true, Description: "Structured template components"},
				{Name: "language", In: InBody, Type: "string", Description: "Template language code (e.g. 'en_US')"},
			},
		},
		{
			Name:        "create_authentication_template_with_otp_copy_code_button",
			Method:      "POST",
			Path:        "/{api_version}/{waba_id}/message_templates",
			Description: "Create an authentication template with an OTP copy-code button.",
			Params:      append([]Param{apiVersion, wabaID}, templateBody...),
		},
		{
			Name:        "delete_template_by_name",
			Method:      "DELETE",
			Path:        "/{api_version}/{waba_id}/message_templates",
			Description: "Delete a message template by name or template ID.",
			Params: []Param{
				apiVersion, wabaID,
				{Name: "name", In: InQuery, Type: "string", Description: "Name of the template to delete"},
				{Name: "hsm_id", In: InQuery, Type: "string", Description: "Template ID"},
			},
		},
		{
			Name:        "get_all_apps_subscribed_to_waba_swebhooks",
			Method:      "GET",
			Path:        "/{api_version}/{waba_id}/subscribed_apps",
			Description: "List all apps subscribed to the WABA's webhooks.",
			Params:      []Param{apiVersion, wabaID},
		},
		{
			Name:        "subscribe_app_to_waba_swebhooks",
			Method:      "POST",
			Path:        "/{api_version}/{waba_id}/subscribed_apps",
			Description: "Subscribe the calling app to the WABA's webhooks.",
			Params:      []Param{apiVersion, wabaID},
		},
		{
			Name:        "unsubscribe_app_from_waba_swebhooks",
			Method:      "DELETE",
			Path:        "/{api_version}/{waba_id}/subscribed_apps",
			Description: "Unsubscribe the calling app from the WABA's webhooks.",
			Params:      []Param{apiVersion, wabaID},
		},
		{
			Name:        "get_all_shared_wabas",
			Method:      "GET",
			Path:        "/{api_version}/{business_account_id}/client_whatsapp_business_accounts",
			Description: "List WhatsApp Business Accounts shared with the business account.",
			Params:      []Param{apiVersion, businessAccountID},
		},
		{
			Name:        "get_all_owned_wabas",
			Method:      "GET",
			Path:        "/{api_version}/{business_account_id}/owned_whatsapp_business_accounts",
			Description: "List WhatsApp Business Accounts owned by the business account.",
			Params:      []Param{apiVersion, businessAccountID},
		},
	}
}
