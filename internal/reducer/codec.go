package reducer

import (
	"encoding/json"
	"fmt"
)

// #region envelope
// envelope is the wire form of an action: a string discriminant plus the
// payload shape of the matching struct in actions.go.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
// #endregion envelope

// #region action-type
// ActionType returns the wire name of an action.
func ActionType(a Action) string {
	switch a.(type) {
	case GotoNextStep:
		return "GOTO_NEXT_STEP"
	case GotoPreviousStep:
		return "GOTO_PREVIOUS_STEP"
	case GotoStep:
		return "GOTO_STEP"
	case ChangeTool:
		return "CHANGE_TOOL"
	case ChangeZoom:
		return "CHANGE_ZOOM"
	case ChangePage:
		return "CHANGE_PAGE"
	case TogglePreviewTooltips:
		return "TOGGLE_PREVIEW_TOOLTIPS"
	case ShowLoadingScreen:
		return "SHOW_LOADING_SCREEN"
	case CreateAnnotation:
		return "CREATE_ANNOTATION"
	case CreateAnnotationFromTokens:
		return "CREATE_ANNOTATION_FROM_TOKENS"
	case MoveAnnotation:
		return "MOVE_ANNOTATION"
	case ResizeAnnotation:
		return "RESIZE_ANNOTATION"
	case DeleteAnnotation:
		return "DELETE_ANNOTATION"
	case SetAnnotationType:
		return "SET_ANNOTATION_TYPE"
	case ChangeCustomTooltip:
		return "CHANGE_CUSTOM_TOOLTIP"
	case SelectAnnotation:
		return "SELECT_ANNOTATION"
	case DeselectAnnotation:
		return "DESELECT_ANNOTATION"
	case DeselectAllAnnotations:
		return "DESELECT_ALL_ANNOTATION"
	case CreateLabel:
		return "CREATE_LABEL"
	case DeleteLabel:
		return "DELETE_LABEL"
	case CreateGroupRelation:
		return "CREATE_GROUP_RELATION"
	case RemoveFromGroup:
		return "REMOVE_FROM_GROUP"
	case MoveSectionSlider:
		return "MOVE_SECTION_SLIDER"
	case CreateNewSection:
		return "CREATE_NEW_SECTION"
	case JumpBackToFieldLayer:
		return "JUMP_BACK_TO_FIELD_LAYER"
	case Undo:
		return "UNDO"
	case Redo:
		return "REDO"
	case HydrateStore:
		return "HYDRATE_STORE"
	case IncrementStepAndAnnotations:
		return "INCREMENT_STEP_AND_ANNOTATIONS"
	default:
		panic(fmt.Sprintf("reducer: action %T has no wire name", a))
	}
}
// #endregion action-type

// #region marshal
// MarshalAction encodes an action into its wire envelope.
func MarshalAction(a Action) ([]byte, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", ActionType(a), err)
	}
	return json.Marshal(envelope{Type: ActionType(a), Payload: payload})
}
// #endregion marshal

// #region parse
// ParseAction decodes a wire envelope back into an action. Unknown type
// names are an error, never a silent no-op.
func ParseAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse action envelope: %w", err)
	}
	decode := func(into Action) (Action, error) {
		if len(env.Payload) == 0 {
			return into, nil
		}
		if err := json.Unmarshal(env.Payload, into); err != nil {
			return nil, fmt.Errorf("parse %s payload: %w", env.Type, err)
		}
		return into, nil
	}
	var action Action
	var err error
	switch env.Type {
	case "GOTO_NEXT_STEP":
		return GotoNextStep{}, nil
	case "GOTO_PREVIOUS_STEP":
		return GotoPreviousStep{}, nil
	case "GOTO_STEP":
		action, err = decode(&GotoStep{})
	case "CHANGE_TOOL":
		action, err = decode(&ChangeTool{})
	case "CHANGE_ZOOM":
		action, err = decode(&ChangeZoom{})
	case "CHANGE_PAGE":
		action, err = decode(&ChangePage{})
	case "TOGGLE_PREVIEW_TOOLTIPS":
		return TogglePreviewTooltips{}, nil
	case "SHOW_LOADING_SCREEN":
		return ShowLoadingScreen{}, nil
	case "CREATE_ANNOTATION":
		action, err = decode(&CreateAnnotation{})
	case "CREATE_ANNOTATION_FROM_TOKENS":
		action, err = decode(&CreateAnnotationFromTokens{})
	case "MOVE_ANNOTATION":
		action, err = decode(&MoveAnnotation{})
	case "RESIZE_ANNOTATION":
		action, err = decode(&ResizeAnnotation{})
	case "DELETE_ANNOTATION":
		action, err = decode(&DeleteAnnotation{})
	case "SET_ANNOTATION_TYPE":
		action, err = decode(&SetAnnotationType{})
	case "CHANGE_CUSTOM_TOOLTIP":
		action, err = decode(&ChangeCustomTooltip{})
	case "SELECT_ANNOTATION":
		action, err = decode(&SelectAnnotation{})
	case "DESELECT_ANNOTATION":
		action, err = decode(&DeselectAnnotation{})
	case "DESELECT_ALL_ANNOTATION":
		return DeselectAllAnnotations{}, nil
	case "CREATE_LABEL":
		action, err = decode(&CreateLabel{})
	case "DELETE_LABEL":
		action, err = decode(&DeleteLabel{})
	case "CREATE_GROUP_RELATION":
		action, err = decode(&CreateGroupRelation{})
	case "REMOVE_FROM_GROUP":
		action, err = decode(&RemoveFromGroup{})
	case "MOVE_SECTION_SLIDER":
		action, err = decode(&MoveSectionSlider{})
	case "CREATE_NEW_SECTION":
		return CreateNewSection{}, nil
	case "JUMP_BACK_TO_FIELD_LAYER":
		return JumpBackToFieldLayer{}, nil
	case "UNDO":
		return Undo{}, nil
	case "REDO":
		return Redo{}, nil
	case "HYDRATE_STORE":
		action, err = decode(&HydrateStore{})
	case "INCREMENT_STEP_AND_ANNOTATIONS":
		action, err = decode(&IncrementStepAndAnnotations{})
	default:
		return nil, fmt.Errorf("parse action: unknown type %q", env.Type)
	}
	if err != nil {
		return nil, err
	}
	return deref(action), nil
}

// deref unwraps the pointers decode needed for json.Unmarshal so callers
// always see value actions.
func deref(a Action) Action {
	switch v := a.(type) {
	case *GotoStep:
		return *v
	case *ChangeTool:
		return *v
	case *ChangeZoom:
		return *v
	case *ChangePage:
		return *v
	case *CreateAnnotation:
		return *v
	case *CreateAnnotationFromTokens:
		return *v
	case *MoveAnnotation:
		return *v
	case *ResizeAnnotation:
		return *v
	case *DeleteAnnotation:
		return *v
	case *SetAnnotationType:
		return *v
	case *ChangeCustomTooltip:
		return *v
	case *SelectAnnotation:
		return *v
	case *DeselectAnnotation:
		return *v
	case *CreateLabel:
		return *v
	case *DeleteLabel:
		return *v
	case *CreateGroupRelation:
		return *v
	case *RemoveFromGroup:
		return *v
	case *MoveSectionSlider:
		return *v
	case *HydrateStore:
		return *v
	case *IncrementStepAndAnnotations:
		return *v
	default:
		return a
	}
}
// #endregion parse
