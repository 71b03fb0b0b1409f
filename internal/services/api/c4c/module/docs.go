package module

import "c4ctexts/internal/modkit/swaggerkit"

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func jsonBody(schema string) map[string]any {
	return map[string]any{
		"required": true,
		"content":  map[string]any{"application/json": map[string]any{"schema": ref(schema)}},
	}
}

func okJSON(schema string) map[string]any {
	return map[string]any{
		"description": "OK",
		"content":     map[string]any{"application/json": map[string]any{"schema": ref(schema)}},
	}
}

func post(summary, body, out string) map[string]any {
	return map[string]any{
		"post": map[string]any{
			"tags":        []any{"c4c"},
			"summary":     summary,
			"requestBody": jsonBody(body),
			"responses": map[string]any{
				"200": okJSON(out),
				"404": map[string]any{"description": "Ticket not found or missing ObjectID."},
			},
		},
	}
}

func object(props map[string]any) map[string]any {
	return map[string]any{"type": "object", "properties": props}
}

var (
	strProp  = map[string]any{"type": "string"}
	odataSet = map[string]any{"type": "object", "description": "OData v2 envelope {d:{results:[...]}}"}
)

// registerDocs contributes the module paths and schemas under prefix
func registerDocs(prefix string) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		paths := swaggerkit.Paths(spec)
		paths[prefix+"/health"] = map[string]any{
			"get": map[string]any{
				"tags":      []any{"c4c"},
				"summary":   "Module liveness",
				"responses": map[string]any{"200": okJSON("C4CHealth")},
			},
		}
		paths[prefix+"/service-request-texts"] = post("Ticket text collection", "TicketRequest", "TicketTexts")
		paths[prefix+"/internal-memos"] = post("Internal memo activities of a ticket", "TicketRequest", "InternalMemos")
		paths[prefix+"/email-notes"] = post("Ticket references and optionally one e-mail with notes", "EmailNotesRequest", "EmailNotes")
		paths[prefix+"/email-notes-collection"] = post("Every referenced e-mail with notes, flattened", "TicketRequest", "EmailNotesCollection")

		export := post("Download the flattened notes", "TicketRequest", "EmailNotesCollection")
		op := export["post"].(map[string]any)
		op["parameters"] = []any{map[string]any{
			"name": "format", "in": "query", "required": false,
			"schema": map[string]any{"type": "string", "enum": []any{"json", "csv"}, "default": "json"},
		}}
		op["responses"].(map[string]any)["200"] = map[string]any{
			"description": "attachment",
			"content": map[string]any{
				"text/csv":         map[string]any{"schema": strProp},
				"application/json": map[string]any{"schema": ref("EmailNotesCollection")},
			},
		}
		paths[prefix+"/email-notes-collection/export"] = export

		ticket := map[string]any{
			"tenantUrl": map[string]any{"type": "string", "example": "https://my000000.crm.ondemand.com"},
			"ticketId":  map[string]any{"type": "string", "example": "TCK-1"},
			"username":  strProp,
			"password":  map[string]any{"type": "string", "format": "password"},
		}
		withEmail := map[string]any{"emailActivityId": strProp}
		for k, v := range ticket {
			withEmail[k] = v
		}
		notesArr := map[string]any{"type": "array", "items": ref("Note")}

		schemas := swaggerkit.Schemas(spec)
		schemas["C4CHealth"] = object(map[string]any{"status": map[string]any{"type": "string", "example": "ok"}})
		schemas["TicketRequest"] = object(ticket)
		schemas["EmailNotesRequest"] = object(withEmail)
		schemas["TicketTexts"] = object(map[string]any{"objectId": strProp, "data": odataSet})
		schemas["InternalMemos"] = object(map[string]any{
			"objectId":   strProp,
			"references": odataSet,
			"activities": map[string]any{"type": "array", "items": odataSet},
			"notes":      notesArr,
		})
		schemas["EmailNotes"] = object(map[string]any{"objectId": strProp, "references": odataSet, "emailNotes": odataSet})
		schemas["EmailNotesCollection"] = object(map[string]any{
			"ticketId":   strProp,
			"objectId":   strProp,
			"references": odataSet,
			"emailNotes": map[string]any{"type": "array", "items": object(map[string]any{"id": strProp, "data": odataSet})},
			"notes":      notesArr,
		})
		note := map[string]any{"noteIndex": map[string]any{"type": "integer"}}
		for _, k := range []string{
			"ticketId", "emailActivityId", "html", "text", "objectId", "parentObjectId", "headerObjectId",
			"externalKey", "emailExternalKey", "emailId", "typeCode", "typeCodeText", "authorName",
			"authorUuid", "createdOn", "createdBy", "updatedOn", "lastUpdatedBy", "language", "languageText",
		} {
			note[k] = strProp
		}
		schemas["Note"] = object(note)
	}
}
