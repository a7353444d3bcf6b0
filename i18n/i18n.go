package i18n

import "strings"

// DefaultLanguage is Arabic — the app is Arabic-first with English fallback.
const DefaultLanguage = "ar"

var translations = map[string]map[string]string{
	"en": {
		// email validation
		"validation_email_required":               "Email is required.",
		"validation_email_must_start_with_letter": "Email must start with a letter.",
		"validation_email_must_contain_at":        "Email must contain @.",
		"validation_email_contains_invalid_chars": "Email contains invalid characters.",
		"validation_email_invalid_format":         "Email format is invalid.",
		"error_in_email":                          "Error in email",

		// profile
		"profile_updated":                     "Profile updated",
		"profile_updated_desc":                "Your profile details were saved successfully.",
		"update_error":                        "Update failed",
		"update_error_desc":                   "Something went wrong while saving your profile. Please try again.",
		"profile_picture_removed":             "Profile picture removed",
		"profile_picture_restored_to_default": "Your profile picture was restored to the default avatar.",

		// geolocation
		"geolocation_not_supported":           "Geolocation is not supported by your browser.",
		"geolocation_not_supported_desc":      "Please enter your address manually.",
		"configuration_error":                 "Configuration Error",
		"google_maps_api_key_missing":         "Google Maps API key is missing. Add GOOGLE_MAPS_API_KEY to the environment.",
		"location_retrieved_successfully":     "Location retrieved successfully!",
		"could_not_determine_address_title":   "Could not determine address",
		"could_not_determine_address_desc":    "Failed to determine a precise address. Please try again or enter it manually.",
		"failed_to_get_location":              "Failed to get location",
		"failed_to_get_location_desc":         "Please ensure you have enabled location services and granted permission.",
		"geolocation_permission_denied_desc":  "Please allow location access in your browser settings to use this feature.",
		"geolocation_position_unavailable_desc": "We could not determine your location. Please check your network connection.",
		"geolocation_timeout_desc":            "The request to get your location timed out. Please try again.",

		// availability
		"availability_status_updated": "Availability status updated",
		"status_available":            "Available",
		"status_busy":                 "Busy",
		"status_closed":               "Closed",
		"you_have_pending_orders":     "You have pending orders",
		"pending_orders_desc":         "You have {count} orders waiting for your review.",

		// orders & accounts
		"order_status_changed":      "Order status changed",
		"order_status_changed_desc": "Your order is now {status}.",
		"account_approved":          "Account approved",
		"account_approved_desc":     "Your account was approved. Welcome aboard!",

		// nav
		"my_orders_title":    "My Orders",
		"admin_dashboard":    "Admin Dashboard",
		"dashboard":          "Dashboard",
		"delivery_dashboard": "Delivery Dashboard",
	},
	"ar": {
		"validation_email_required":               "البريد الإلكتروني مطلوب.",
		"validation_email_must_start_with_letter": "يجب أن يبدأ البريد الإلكتروني بحرف.",
		"validation_email_must_contain_at":        "يجب أن يحتوي البريد الإلكتروني على @.",
		"validation_email_contains_invalid_chars": "يحتوي البريد الإلكتروني على رموز غير صالحة.",
		"validation_email_invalid_format":         "صيغة البريد الإلكتروني غير صحيحة.",
		"error_in_email":                          "خطأ في البريد الإلكتروني",

		"profile_updated":                     "تم تحديث الملف الشخصي",
		"profile_updated_desc":                "تم حفظ بيانات ملفك الشخصي بنجاح.",
		"update_error":                        "فشل التحديث",
		"update_error_desc":                   "حدث خطأ أثناء حفظ ملفك الشخصي. حاول مرة أخرى.",
		"profile_picture_removed":             "تمت إزالة صورة الملف الشخصي",
		"profile_picture_restored_to_default": "تمت استعادة الصورة الافتراضية.",

		"geolocation_not_supported":           "متصفحك لا يدعم تحديد الموقع.",
		"geolocation_not_supported_desc":      "يرجى إدخال عنوانك يدويًا.",
		"configuration_error":                 "خطأ في الإعدادات",
		"google_maps_api_key_missing":         "مفتاح خرائط جوجل غير موجود. أضف GOOGLE_MAPS_API_KEY إلى الإعدادات.",
		"location_retrieved_successfully":     "تم تحديد الموقع بنجاح!",
		"could_not_determine_address_title":   "تعذر تحديد العنوان",
		"could_not_determine_address_desc":    "فشل تحديد عنوان دقيق. حاول مرة أخرى أو أدخله يدويًا.",
		"failed_to_get_location":              "فشل الحصول على الموقع",
		"failed_to_get_location_desc":         "تأكد من تفعيل خدمات الموقع ومنح الإذن.",
		"geolocation_permission_denied_desc":  "يرجى السماح بالوصول إلى الموقع من إعدادات المتصفح.",
		"geolocation_position_unavailable_desc": "تعذر تحديد موقعك. تحقق من اتصال الشبكة.",
		"geolocation_timeout_desc":            "انتهت مهلة طلب تحديد الموقع. حاول مرة أخرى.",

		"availability_status_updated": "تم تحديث حالة التوفر",
		"status_available":            "متاح",
		"status_busy":                 "مشغول",
		"status_closed":               "مغلق",
		"you_have_pending_orders":     "لديك طلبات معلقة",
		"pending_orders_desc":         "لديك {count} طلبات بانتظار مراجعتك.",

		"order_status_changed":      "تغيرت حالة الطلب",
		"order_status_changed_desc": "طلبك الآن {status}.",
		"account_approved":          "تمت الموافقة على الحساب",
		"account_approved_desc":     "تمت الموافقة على حسابك. أهلاً بك!",

		"my_orders_title":    "طلباتي",
		"admin_dashboard":    "لوحة تحكم المسؤول",
		"dashboard":          "لوحة التحكم",
		"delivery_dashboard": "لوحة تحكم التوصيل",
	},
}

// T resolves a message key for a language. Unknown languages fall back to
// the default language; unknown keys fall back to the key itself.
func T(lang, key string) string {
	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(tag, "-;"); i >= 0 {
			tag = tag[:i]
		}
		if _, ok := translations[tag]; ok {
			return tag
		}
	}
	return DefaultLanguage
}
